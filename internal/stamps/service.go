package stamps

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
)

// StampStore is the persistence surface the service needs.
type StampStore interface {
	ListForUser(ctx context.Context, userID uuid.UUID, trailID *uuid.UUID) ([]models.Stamp, error)
}

// TrailResolver resolves a trail subdomain to its row.
type TrailResolver interface {
	FindBySubdomain(ctx context.Context, subdomain string) (*models.Trail, error)
}

// Service exposes stamp listings for a user's passport.
type Service interface {
	ListForUser(ctx context.Context, userID uuid.UUID, trailSubdomain string) ([]StampDTO, error)
}

type service struct {
	stampRepo StampStore
	trailRepo TrailResolver
}

// NewService builds a stamp service with the required dependencies.
func NewService(stampRepo StampStore, trailRepo TrailResolver) (Service, error) {
	if stampRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stamp repo is required")
	}
	if trailRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "trail repo is required")
	}
	return &service{stampRepo: stampRepo, trailRepo: trailRepo}, nil
}

// ListForUser returns the user's stamps, newest first. A trail subdomain
// narrows the listing to that trail; an unknown subdomain leaves the listing
// unfiltered, matching the tolerant behavior of the public passport endpoint.
func (s *service) ListForUser(ctx context.Context, userID uuid.UUID, trailSubdomain string) ([]StampDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	var trailID *uuid.UUID
	if sub := strings.TrimSpace(trailSubdomain); sub != "" {
		trail, err := s.trailRepo.FindBySubdomain(ctx, sub)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load trail")
		}
		if trail != nil {
			trailID = &trail.ID
		}
	}

	list, err := s.stampRepo.ListForUser(ctx, userID, trailID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list stamps")
	}

	out := make([]StampDTO, 0, len(list))
	for _, stamp := range list {
		out = append(out, toDTO(stamp))
	}
	return out, nil
}
