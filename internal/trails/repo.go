package trails

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
)

// Repository encapsulates trail persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a trail repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindActiveBySubdomain returns the active trail for a subdomain.
func (r *Repository) FindActiveBySubdomain(ctx context.Context, subdomain string) (*models.Trail, error) {
	var trail models.Trail
	err := r.db.WithContext(ctx).
		Where("subdomain = ? AND is_active = ?", subdomain, true).
		First(&trail).
		Error
	if err != nil {
		return nil, err
	}
	return &trail, nil
}

// FindBySubdomain returns the trail for a subdomain regardless of active state.
func (r *Repository) FindBySubdomain(ctx context.Context, subdomain string) (*models.Trail, error) {
	var trail models.Trail
	err := r.db.WithContext(ctx).
		Where("subdomain = ?", subdomain).
		First(&trail).
		Error
	if err != nil {
		return nil, err
	}
	return &trail, nil
}

// ListAll returns every trail, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Trail, error) {
	var list []models.Trail
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CountUsers returns how many users belong to the trail.
func (r *Repository) CountUsers(ctx context.Context, trailID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("trail_id = ?", trailID).
		Count(&count).
		Error
	return count, err
}

// CountStamps returns how many stamps exist on the trail.
func (r *Repository) CountStamps(ctx context.Context, trailID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Stamp{}).
		Where("trail_id = ?", trailID).
		Count(&count).
		Error
	return count, err
}

// RatingTotals returns the count and sum of ratings left on the trail's
// breweries.
func (r *Repository) RatingTotals(ctx context.Context, trailID uuid.UUID) (count int64, sum int64, err error) {
	var row struct {
		Count int64
		Sum   int64
	}
	err = r.db.WithContext(ctx).
		Table("ratings r").
		Select("COUNT(r.id) AS count, COALESCE(SUM(r.rating), 0) AS sum").
		Joins("JOIN breweries b ON b.id = r.brewery_id").
		Where("b.trail_id = ?", trailID).
		Scan(&row).
		Error
	if err != nil {
		return 0, 0, err
	}
	return row.Count, row.Sum, nil
}
