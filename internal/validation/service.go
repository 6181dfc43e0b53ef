package validation

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/internal/analytics"
	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	"github.com/shawndjkidd/aletrail-platform/pkg/enums"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
	"github.com/shawndjkidd/aletrail-platform/pkg/metrics"
	"github.com/shawndjkidd/aletrail-platform/pkg/types"
)

// BreweryFinder loads the brewery row including its secret code.
type BreweryFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Brewery, error)
}

// StampWriter performs the conditional stamp insert.
type StampWriter interface {
	Insert(ctx context.Context, userID, breweryID, trailID uuid.UUID, method enums.ValidationMethod) (bool, error)
}

// EventWriter appends analytics events.
type EventWriter interface {
	Insert(ctx context.Context, event analytics.Event) error
}

// ServiceParams groups dependencies for the validation service.
type ServiceParams struct {
	BreweryRepo BreweryFinder
	StampRepo   StampWriter
	EventRepo   EventWriter
	Metrics     *metrics.APIMetrics
	Logger      *logger.Logger
}

// Request carries one validation attempt.
type Request struct {
	BreweryID uuid.UUID
	Code      string
	UserID    *uuid.UUID
	Method    enums.ValidationMethod
}

// Result reports the outcome. Valid with a nil UserID is a preview: the code
// matched but nothing was persisted.
type Result struct {
	Valid        bool
	StampCreated bool
	BreweryID    uuid.UUID
	Message      string
}

// Service validates brewery secret codes and collects stamps.
type Service interface {
	ValidateCode(ctx context.Context, req Request) (Result, error)
}

type service struct {
	breweryRepo BreweryFinder
	stampRepo   StampWriter
	eventRepo   EventWriter
	metrics     *metrics.APIMetrics
	logg        *logger.Logger
}

// NewService builds a validation service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.BreweryRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "brewery repo is required")
	}
	if params.StampRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stamp repo is required")
	}
	if params.EventRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event repo is required")
	}
	return &service{
		breweryRepo: params.BreweryRepo,
		stampRepo:   params.StampRepo,
		eventRepo:   params.EventRepo,
		metrics:     params.Metrics,
		logg:        params.Logger,
	}, nil
}

// Normalize uppercases and trims a submitted code so comparisons are
// case- and whitespace-insensitive.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCode compares the submitted code to the brewery's secret. An invalid
// code produces no side effects. A valid code with a user collects a stamp:
// the insert is conditional on the (user, brewery) unique index, so a repeat
// validation reports valid without creating a second stamp or event. Analytics
// writes are best effort and never fail the validation.
func (s *service) ValidateCode(ctx context.Context, req Request) (Result, error) {
	if req.BreweryID == uuid.Nil || strings.TrimSpace(req.Code) == "" {
		return Result{}, pkgerrors.New(pkgerrors.CodeValidation, "Brewery ID and code required")
	}
	method := req.Method
	if !method.IsValid() {
		method = enums.ValidationMethodCode
	}

	brewery, err := s.breweryRepo.FindByID(ctx, req.BreweryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.metrics.IncValidation("unknown_brewery")
			return Result{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "brewery not found")
		}
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load brewery")
	}

	if Normalize(brewery.SecretCode) != Normalize(req.Code) {
		s.metrics.IncValidation("invalid")
		return Result{
			Valid:     false,
			BreweryID: brewery.ID,
			Message:   "Invalid code",
		}, nil
	}

	result := Result{
		Valid:     true,
		BreweryID: brewery.ID,
		Message:   "Code validated successfully!",
	}
	s.metrics.IncValidation("valid")

	if req.UserID == nil {
		return result, nil
	}

	created, err := s.stampRepo.Insert(ctx, *req.UserID, brewery.ID, brewery.TrailID, method)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "collect stamp")
	}
	result.StampCreated = created

	if created {
		s.metrics.IncStampCollected()
		s.recordStampEvent(ctx, *req.UserID, brewery, method)
	}

	return result, nil
}

func (s *service) recordStampEvent(ctx context.Context, userID uuid.UUID, brewery *models.Brewery, method enums.ValidationMethod) {
	breweryID := brewery.ID
	event := analytics.Event{
		TrailID:   brewery.TrailID,
		UserID:    &userID,
		BreweryID: &breweryID,
		EventType: enums.AnalyticsEventStampCollected,
		EventData: types.EventData{
			"method":       method.String(),
			"brewery_name": brewery.Name,
		},
	}
	if err := s.eventRepo.Insert(ctx, event); err != nil && s.logg != nil {
		logCtx := s.logg.WithTrailID(ctx, brewery.TrailID.String())
		logCtx = s.logg.WithUserID(logCtx, userID.String())
		logCtx = s.logg.WithBreweryID(logCtx, breweryID.String())
		s.logg.Warn(s.logg.WithField(logCtx, "event_type", event.EventType.String()), "analytics.write_failed")
	}
}
