package trails

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
)

type stubTrailStore struct {
	trail       *models.Trail
	trailErr    error
	allTrails   []models.Trail
	users       int64
	stamps      int64
	ratingCount int64
	ratingSum   int64
}

func (s *stubTrailStore) FindActiveBySubdomain(ctx context.Context, subdomain string) (*models.Trail, error) {
	if s.trailErr != nil {
		return nil, s.trailErr
	}
	return s.trail, nil
}

func (s *stubTrailStore) FindBySubdomain(ctx context.Context, subdomain string) (*models.Trail, error) {
	if s.trailErr != nil {
		return nil, s.trailErr
	}
	return s.trail, nil
}

func (s *stubTrailStore) ListAll(ctx context.Context) ([]models.Trail, error) {
	return s.allTrails, nil
}

func (s *stubTrailStore) CountUsers(ctx context.Context, trailID uuid.UUID) (int64, error) {
	return s.users, nil
}

func (s *stubTrailStore) CountStamps(ctx context.Context, trailID uuid.UUID) (int64, error) {
	return s.stamps, nil
}

func (s *stubTrailStore) RatingTotals(ctx context.Context, trailID uuid.UUID) (int64, int64, error) {
	return s.ratingCount, s.ratingSum, nil
}

func TestGetBySubdomainReturnsTrail(t *testing.T) {
	trail := &models.Trail{ID: uuid.New(), Name: "Tulsa Ale Trail", Subdomain: "tulsa", IsActive: true}
	svc, err := NewService(&stubTrailStore{trail: trail})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got, err := svc.GetBySubdomain(context.Background(), "tulsa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != trail.ID {
		t.Fatalf("expected trail %s, got %s", trail.ID, got.ID)
	}
	if got.Subdomain != "tulsa" {
		t.Fatalf("unexpected subdomain: %s", got.Subdomain)
	}
}

func TestGetBySubdomainNotFound(t *testing.T) {
	svc, err := NewService(&stubTrailStore{trailErr: gorm.ErrRecordNotFound})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.GetBySubdomain(context.Background(), "missing")
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %s", typed.Code())
	}
}

func TestGetBySubdomainRequiresSubdomain(t *testing.T) {
	svc, err := NewService(&stubTrailStore{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.GetBySubdomain(context.Background(), "   ")
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", typed.Code())
	}
}

func TestGetStatsFormatsAverage(t *testing.T) {
	trail := &models.Trail{ID: uuid.New(), Subdomain: "tulsa"}
	store := &stubTrailStore{
		trail:       trail,
		users:       12,
		stamps:      40,
		ratingCount: 3,
		ratingSum:   11,
	}
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	stats, err := svc.GetStats(context.Background(), "tulsa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalStamps != 40 || stats.TotalRatings != 3 || stats.TotalUsers != 12 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.AverageRating != "3.67" {
		t.Fatalf("expected average 3.67, got %s", stats.AverageRating)
	}
}

func TestGetStatsZeroRatings(t *testing.T) {
	trail := &models.Trail{ID: uuid.New(), Subdomain: "tulsa"}
	svc, err := NewService(&stubTrailStore{trail: trail})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	stats, err := svc.GetStats(context.Background(), "tulsa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.AverageRating != "0" {
		t.Fatalf("expected average 0, got %s", stats.AverageRating)
	}
}

func TestListAllMapsTrails(t *testing.T) {
	store := &stubTrailStore{allTrails: []models.Trail{
		{ID: uuid.New(), Name: "A", Subdomain: "a"},
		{ID: uuid.New(), Name: "B", Subdomain: "b"},
	}}
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected two trails, got %d", len(got))
	}
	if got[0].Subdomain != "a" {
		t.Fatalf("unexpected first trail: %s", got[0].Subdomain)
	}
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error without a repo")
	}
}
