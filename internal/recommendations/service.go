package recommendations

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
)

// TrailResolver resolves a trail subdomain to its row.
type TrailResolver interface {
	FindBySubdomain(ctx context.Context, subdomain string) (*models.Trail, error)
}

// UserFinder loads a user and their preferences.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// BreweryLister returns the trail's active breweries ordered by position.
type BreweryLister interface {
	ListActiveByTrail(ctx context.Context, trailID uuid.UUID) ([]models.Brewery, error)
}

// VisitLister returns the brewery IDs a user has stamped on a trail.
type VisitLister interface {
	ListVisitedBreweryIDs(ctx context.Context, userID, trailID uuid.UUID) ([]uuid.UUID, error)
}

// ServiceParams groups dependencies for the recommendation service.
type ServiceParams struct {
	TrailRepo   TrailResolver
	UserRepo    UserFinder
	BreweryRepo BreweryLister
	StampRepo   VisitLister
}

// ResultDTO is the recommendation payload for one user on one trail.
type ResultDTO struct {
	Recommendations []RecommendationDTO `json:"recommendations"`
	Message         string              `json:"message"`
	Visited         int                 `json:"visited"`
	Total           int                 `json:"total"`
}

// Service produces personalized brewery recommendations.
type Service interface {
	ForUser(ctx context.Context, userID uuid.UUID, trailSubdomain string) (ResultDTO, error)
}

type service struct {
	trailRepo   TrailResolver
	userRepo    UserFinder
	breweryRepo BreweryLister
	stampRepo   VisitLister
}

// NewService builds a recommendation service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.TrailRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "trail repo is required")
	}
	if params.UserRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user repo is required")
	}
	if params.BreweryRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "brewery repo is required")
	}
	if params.StampRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stamp repo is required")
	}
	return &service{
		trailRepo:   params.TrailRepo,
		userRepo:    params.UserRepo,
		breweryRepo: params.BreweryRepo,
		stampRepo:   params.StampRepo,
	}, nil
}

// ForUser loads the user's preferences, the trail's breweries, and the user's
// visit history, then runs the engine. A user without a row or without flavor
// preferences gets the cold-start path.
func (s *service) ForUser(ctx context.Context, userID uuid.UUID, trailSubdomain string) (ResultDTO, error) {
	if userID == uuid.Nil {
		return ResultDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	trailSubdomain = strings.TrimSpace(trailSubdomain)
	if trailSubdomain == "" {
		return ResultDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "Trail subdomain required")
	}

	trail, err := s.trailRepo.FindBySubdomain(ctx, trailSubdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResultDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "trail not found")
		}
		return ResultDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load trail")
	}

	var flavors []string
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ResultDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	if user != nil {
		flavors = user.Preferences.Flavors()
	}

	all, err := s.breweryRepo.ListActiveByTrail(ctx, trail.ID)
	if err != nil {
		return ResultDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list breweries")
	}

	visited, err := s.stampRepo.ListVisitedBreweryIDs(ctx, userID, trail.ID)
	if err != nil {
		return ResultDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list visited breweries")
	}

	result := Recommend(flavors, all, visited)
	return ResultDTO{
		Recommendations: result.Recommendations,
		Message:         result.Message,
		Visited:         len(visited),
		Total:           len(all),
	}, nil
}
