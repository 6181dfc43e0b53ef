package trails

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
)

// TrailStore is the persistence surface the service needs.
type TrailStore interface {
	FindActiveBySubdomain(ctx context.Context, subdomain string) (*models.Trail, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*models.Trail, error)
	ListAll(ctx context.Context) ([]models.Trail, error)
	CountUsers(ctx context.Context, trailID uuid.UUID) (int64, error)
	CountStamps(ctx context.Context, trailID uuid.UUID) (int64, error)
	RatingTotals(ctx context.Context, trailID uuid.UUID) (int64, int64, error)
}

// Service exposes trail lookups and aggregate statistics.
type Service interface {
	GetBySubdomain(ctx context.Context, subdomain string) (TrailDTO, error)
	GetStats(ctx context.Context, subdomain string) (TrailStatsDTO, error)
	ListAll(ctx context.Context) ([]TrailDTO, error)
}

type service struct {
	repo TrailStore
}

// NewService builds a trail service with the required dependencies.
func NewService(repo TrailStore) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "trail repo is required")
	}
	return &service{repo: repo}, nil
}

// GetBySubdomain returns the active trail matching a subdomain.
func (s *service) GetBySubdomain(ctx context.Context, subdomain string) (TrailDTO, error) {
	subdomain = strings.TrimSpace(subdomain)
	if subdomain == "" {
		return TrailDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "trail subdomain required")
	}
	trail, err := s.repo.FindActiveBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TrailDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "trail not found")
		}
		return TrailDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load trail")
	}
	return toDTO(*trail), nil
}

// GetStats aggregates stamp, rating, and user counts for a trail. The average
// rating is rendered with two decimal places.
func (s *service) GetStats(ctx context.Context, subdomain string) (TrailStatsDTO, error) {
	subdomain = strings.TrimSpace(subdomain)
	if subdomain == "" {
		return TrailStatsDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "trail subdomain required")
	}
	trail, err := s.repo.FindBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TrailStatsDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "trail not found")
		}
		return TrailStatsDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load trail")
	}

	var combined error

	stamps, err := s.repo.CountStamps(ctx, trail.ID)
	combined = multierr.Append(combined, err)

	users, err := s.repo.CountUsers(ctx, trail.ID)
	combined = multierr.Append(combined, err)

	ratingCount, ratingSum, err := s.repo.RatingTotals(ctx, trail.ID)
	combined = multierr.Append(combined, err)

	if combined != nil {
		return TrailStatsDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "aggregate trail stats")
	}

	average := "0"
	if ratingCount > 0 {
		average = decimal.NewFromInt(ratingSum).
			Div(decimal.NewFromInt(ratingCount)).
			StringFixed(2)
	}

	return TrailStatsDTO{
		TotalStamps:   stamps,
		TotalRatings:  ratingCount,
		TotalUsers:    users,
		AverageRating: average,
	}, nil
}

// ListAll returns every trail, newest first.
func (s *service) ListAll(ctx context.Context) ([]TrailDTO, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list trails")
	}
	out := make([]TrailDTO, 0, len(list))
	for _, trail := range list {
		out = append(out, toDTO(trail))
	}
	return out, nil
}
