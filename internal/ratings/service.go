package ratings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/internal/analytics"
	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	"github.com/shawndjkidd/aletrail-platform/pkg/enums"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
	"github.com/shawndjkidd/aletrail-platform/pkg/metrics"
	"github.com/shawndjkidd/aletrail-platform/pkg/pagination"
	"github.com/shawndjkidd/aletrail-platform/pkg/types"
)

// RatingStore is the persistence surface the service needs.
type RatingStore interface {
	Upsert(ctx context.Context, input UpsertInput) (*models.Rating, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]models.Rating, string, error)
	ListByBrewery(ctx context.Context, breweryID uuid.UUID) ([]models.Rating, error)
}

// BreweryFinder verifies the rated brewery and supplies its trail.
type BreweryFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Brewery, error)
}

// EventWriter appends analytics events.
type EventWriter interface {
	Insert(ctx context.Context, event analytics.Event) error
}

// ServiceParams groups dependencies for the rating service.
type ServiceParams struct {
	RatingRepo  RatingStore
	BreweryRepo BreweryFinder
	EventRepo   EventWriter
	Metrics     *metrics.APIMetrics
	Logger      *logger.Logger
}

// SubmitInput carries one rating submission.
type SubmitInput struct {
	UserID         uuid.UUID
	BreweryID      uuid.UUID
	BeerID         *uuid.UUID
	Rating         int
	Review         *string
	FlavorsEnjoyed []string
}

// Service exposes rating submission and listings.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (RatingDTO, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params pagination.Params) (UserRatingsPageDTO, error)
	BreweryRatings(ctx context.Context, breweryID uuid.UUID) (BreweryRatingsDTO, error)
}

type service struct {
	ratingRepo  RatingStore
	breweryRepo BreweryFinder
	eventRepo   EventWriter
	metrics     *metrics.APIMetrics
	logg        *logger.Logger
}

// NewService builds a rating service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.RatingRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating repo is required")
	}
	if params.BreweryRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "brewery repo is required")
	}
	if params.EventRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event repo is required")
	}
	return &service{
		ratingRepo:  params.RatingRepo,
		breweryRepo: params.BreweryRepo,
		eventRepo:   params.EventRepo,
		metrics:     params.Metrics,
		logg:        params.Logger,
	}, nil
}

// Submit upserts the user's rating for a brewery or a specific beer. A repeat
// submission overwrites the previous score. The analytics write is best
// effort.
func (s *service) Submit(ctx context.Context, input SubmitInput) (RatingDTO, error) {
	if input.UserID == uuid.Nil || input.BreweryID == uuid.Nil {
		return RatingDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "userId, breweryId, and rating required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return RatingDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "Rating must be between 1 and 5")
	}

	brewery, err := s.breweryRepo.FindByID(ctx, input.BreweryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RatingDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "brewery not found")
		}
		return RatingDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load brewery")
	}

	row, err := s.ratingRepo.Upsert(ctx, UpsertInput{
		UserID:         input.UserID,
		BreweryID:      input.BreweryID,
		BeerID:         input.BeerID,
		Rating:         input.Rating,
		Review:         input.Review,
		FlavorsEnjoyed: input.FlavorsEnjoyed,
	})
	if err != nil {
		return RatingDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save rating")
	}

	s.metrics.IncRatingSubmitted()
	s.recordRatingEvent(ctx, input, brewery)

	return toDTO(*row), nil
}

// ListByUser returns the user's rating history, newest first.
func (s *service) ListByUser(ctx context.Context, userID uuid.UUID, params pagination.Params) (UserRatingsPageDTO, error) {
	if userID == uuid.Nil {
		return UserRatingsPageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	list, next, err := s.ratingRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return UserRatingsPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list ratings")
	}
	out := make([]RatingDTO, 0, len(list))
	for _, row := range list {
		out = append(out, toDTO(row))
	}
	return UserRatingsPageDTO{Ratings: out, NextCursor: next}, nil
}

// BreweryRatings returns a brewery's ratings with the average and the 1..5
// distribution. The average keeps one decimal place.
func (s *service) BreweryRatings(ctx context.Context, breweryID uuid.UUID) (BreweryRatingsDTO, error) {
	if breweryID == uuid.Nil {
		return BreweryRatingsDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "brewery id is required")
	}
	list, err := s.ratingRepo.ListByBrewery(ctx, breweryID)
	if err != nil {
		return BreweryRatingsDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list ratings")
	}

	distribution := map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	sum := int64(0)
	out := make([]RatingDTO, 0, len(list))
	for _, row := range list {
		distribution[row.Rating]++
		sum += int64(row.Rating)
		out = append(out, toDTO(row))
	}

	average := "0"
	if len(list) > 0 {
		average = decimal.NewFromInt(sum).
			Div(decimal.NewFromInt(int64(len(list)))).
			StringFixed(1)
	}

	return BreweryRatingsDTO{
		Ratings: out,
		Stats: BreweryStatsDTO{
			AverageRating: average,
			TotalRatings:  len(list),
			Distribution:  distribution,
		},
	}, nil
}

func (s *service) recordRatingEvent(ctx context.Context, input SubmitInput, brewery *models.Brewery) {
	breweryID := brewery.ID
	userID := input.UserID
	data := types.EventData{"rating": input.Rating}
	if input.BeerID != nil {
		data["beer_id"] = input.BeerID.String()
	}
	event := analytics.Event{
		TrailID:   brewery.TrailID,
		UserID:    &userID,
		BreweryID: &breweryID,
		EventType: enums.AnalyticsEventRatingSubmitted,
		EventData: data,
	}
	if err := s.eventRepo.Insert(ctx, event); err != nil && s.logg != nil {
		logCtx := s.logg.WithTrailID(ctx, brewery.TrailID.String())
		logCtx = s.logg.WithUserID(logCtx, userID.String())
		logCtx = s.logg.WithBreweryID(logCtx, breweryID.String())
		s.logg.Warn(s.logg.WithField(logCtx, "event_type", event.EventType.String()), "analytics.write_failed")
	}
}
