package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	"github.com/shawndjkidd/aletrail-platform/pkg/enums"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
)

const recentEventsLimit = 20

// EventStore is the analytics persistence surface the report needs.
type EventStore interface {
	CountsByType(ctx context.Context, trailID uuid.UUID, since time.Time) (map[enums.AnalyticsEventType]int64, error)
	Recent(ctx context.Context, trailID uuid.UUID, since time.Time, limit int) ([]models.AnalyticsEvent, error)
	CountSince(ctx context.Context, trailID uuid.UUID, since time.Time) (int64, error)
}

// UserCounter counts the users registered on a trail.
type UserCounter interface {
	CountUsers(ctx context.Context, trailID uuid.UUID) (int64, error)
}

// StampGrouper groups the trail's stamps per brewery name.
type StampGrouper interface {
	CountByBrewery(ctx context.Context, trailID uuid.UUID) (map[string]int64, error)
}

// ServiceParams groups dependencies for the analytics report service.
type ServiceParams struct {
	EventRepo EventStore
	TrailRepo UserCounter
	StampRepo StampGrouper
}

// Service builds the admin analytics report.
type Service interface {
	Report(ctx context.Context, trailID uuid.UUID, days int) (ReportDTO, error)
}

type service struct {
	eventRepo EventStore
	trailRepo UserCounter
	stampRepo StampGrouper
}

// NewService builds an analytics service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.EventRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event repo is required")
	}
	if params.TrailRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "trail repo is required")
	}
	if params.StampRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stamp repo is required")
	}
	return &service{
		eventRepo: params.EventRepo,
		trailRepo: params.TrailRepo,
		stampRepo: params.StampRepo,
	}, nil
}

// Report aggregates event counts, per-brewery stamp totals, and the newest
// events for the trailing window.
func (s *service) Report(ctx context.Context, trailID uuid.UUID, days int) (ReportDTO, error) {
	if trailID == uuid.Nil {
		return ReportDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "trail id is required")
	}
	if days <= 0 {
		days = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	var combined error

	total, err := s.eventRepo.CountSince(ctx, trailID, since)
	combined = multierr.Append(combined, err)

	byType, err := s.eventRepo.CountsByType(ctx, trailID, since)
	combined = multierr.Append(combined, err)

	users, err := s.trailRepo.CountUsers(ctx, trailID)
	combined = multierr.Append(combined, err)

	stampsByBrewery, err := s.stampRepo.CountByBrewery(ctx, trailID)
	combined = multierr.Append(combined, err)

	recent, err := s.eventRepo.Recent(ctx, trailID, since, recentEventsLimit)
	combined = multierr.Append(combined, err)

	if combined != nil {
		return ReportDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "aggregate analytics report")
	}

	events := make([]EventDTO, 0, len(recent))
	for _, event := range recent {
		events = append(events, toEventDTO(event))
	}
	if stampsByBrewery == nil {
		stampsByBrewery = map[string]int64{}
	}

	return ReportDTO{
		Stats: ReportStatsDTO{
			TotalEvents:      total,
			StampCollections: byType[enums.AnalyticsEventStampCollected],
			QRScans:          byType[enums.AnalyticsEventQRScanned],
			RatingsSubmitted: byType[enums.AnalyticsEventRatingSubmitted],
			TotalUsers:       users,
		},
		StampsByBrewery: stampsByBrewery,
		RecentEvents:    events,
	}, nil
}
