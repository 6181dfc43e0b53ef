package breweries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
)

// Repository encapsulates brewery persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a brewery repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActiveByTrail returns the trail's active breweries ordered by position.
func (r *Repository) ListActiveByTrail(ctx context.Context, trailID uuid.UUID) ([]models.Brewery, error) {
	var list []models.Brewery
	err := r.db.WithContext(ctx).
		Where("trail_id = ? AND is_active = ?", trailID, true).
		Order("position ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// FindActiveByID returns a single active brewery.
func (r *Repository) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Brewery, error) {
	var brewery models.Brewery
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&brewery).
		Error
	if err != nil {
		return nil, err
	}
	return &brewery, nil
}

// FindByID returns a brewery regardless of active state. Used by the
// validation path, which needs the secret code.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Brewery, error) {
	var brewery models.Brewery
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&brewery).
		Error
	if err != nil {
		return nil, err
	}
	return &brewery, nil
}
