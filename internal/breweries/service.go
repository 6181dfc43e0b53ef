package breweries

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
)

// BreweryStore is the persistence surface the service needs.
type BreweryStore interface {
	ListActiveByTrail(ctx context.Context, trailID uuid.UUID) ([]models.Brewery, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Brewery, error)
}

// TrailResolver resolves a trail subdomain to its row.
type TrailResolver interface {
	FindBySubdomain(ctx context.Context, subdomain string) (*models.Trail, error)
}

// ServiceParams groups dependencies for the brewery service.
type ServiceParams struct {
	BreweryRepo BreweryStore
	TrailRepo   TrailResolver
}

// Service exposes public brewery listings. Secret codes never leave this
// package.
type Service interface {
	ListByTrail(ctx context.Context, subdomain string) ([]BreweryDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (BreweryDTO, error)
}

type service struct {
	breweryRepo BreweryStore
	trailRepo   TrailResolver
}

// NewService builds a brewery service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.BreweryRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "brewery repo is required")
	}
	if params.TrailRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "trail repo is required")
	}
	return &service{
		breweryRepo: params.BreweryRepo,
		trailRepo:   params.TrailRepo,
	}, nil
}

// ListByTrail returns the active breweries for a trail subdomain, ordered by
// position.
func (s *service) ListByTrail(ctx context.Context, subdomain string) ([]BreweryDTO, error) {
	subdomain = strings.TrimSpace(subdomain)
	if subdomain == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "trail subdomain required")
	}

	trail, err := s.trailRepo.FindBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "trail not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load trail")
	}

	list, err := s.breweryRepo.ListActiveByTrail(ctx, trail.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list breweries")
	}

	out := make([]BreweryDTO, 0, len(list))
	for _, brewery := range list {
		out = append(out, ToDTO(brewery))
	}
	return out, nil
}

// GetByID returns a single active brewery.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (BreweryDTO, error) {
	if id == uuid.Nil {
		return BreweryDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "brewery id is required")
	}
	brewery, err := s.breweryRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BreweryDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "brewery not found")
		}
		return BreweryDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load brewery")
	}
	return ToDTO(*brewery), nil
}
