package breweries

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
)

type stubBreweryStore struct {
	list    []models.Brewery
	listErr error
	one     *models.Brewery
	oneErr  error
}

func (s *stubBreweryStore) ListActiveByTrail(ctx context.Context, trailID uuid.UUID) ([]models.Brewery, error) {
	return s.list, s.listErr
}

func (s *stubBreweryStore) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Brewery, error) {
	if s.oneErr != nil {
		return nil, s.oneErr
	}
	return s.one, nil
}

type stubTrailResolver struct {
	trail *models.Trail
	err   error
}

func (s *stubTrailResolver) FindBySubdomain(ctx context.Context, subdomain string) (*models.Trail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.trail, nil
}

func TestListByTrailExcludesSecretCode(t *testing.T) {
	trail := &models.Trail{ID: uuid.New(), Subdomain: "tulsa"}
	store := &stubBreweryStore{list: []models.Brewery{
		{ID: uuid.New(), TrailID: trail.ID, Name: "Cabin Boys", SecretCode: "HOPS2024", Position: 1, IsActive: true},
	}}
	svc, err := NewService(ServiceParams{BreweryRepo: store, TrailRepo: &stubTrailResolver{trail: trail}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got, err := svc.ListByTrail(context.Background(), "tulsa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one brewery, got %d", len(got))
	}

	raw, err := json.Marshal(got[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "HOPS2024") || strings.Contains(string(raw), "secret_code") {
		t.Fatalf("secret code leaked: %s", raw)
	}
	if !strings.Contains(string(raw), "Cabin Boys") {
		t.Fatalf("expected brewery name in payload: %s", raw)
	}
}

func TestListByTrailRequiresSubdomain(t *testing.T) {
	svc, err := NewService(ServiceParams{BreweryRepo: &stubBreweryStore{}, TrailRepo: &stubTrailResolver{}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.ListByTrail(context.Background(), "")
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", typed.Code())
	}
}

func TestListByTrailUnknownTrail(t *testing.T) {
	svc, err := NewService(ServiceParams{
		BreweryRepo: &stubBreweryStore{},
		TrailRepo:   &stubTrailResolver{err: gorm.ErrRecordNotFound},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.ListByTrail(context.Background(), "nope")
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %s", typed.Code())
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, err := NewService(ServiceParams{
		BreweryRepo: &stubBreweryStore{oneErr: gorm.ErrRecordNotFound},
		TrailRepo:   &stubTrailResolver{},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.GetByID(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %s", typed.Code())
	}
}

func TestGetByIDRequiresID(t *testing.T) {
	svc, err := NewService(ServiceParams{BreweryRepo: &stubBreweryStore{}, TrailRepo: &stubTrailResolver{}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err = svc.GetByID(context.Background(), uuid.Nil); err == nil {
		t.Fatal("expected error for a nil id")
	}
}
