package stamps

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db"
	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	"github.com/shawndjkidd/aletrail-platform/pkg/enums"
)

// Repository encapsulates stamp persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a stamp repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert writes a stamp row and reports whether a new row was created. A
// unique violation on (user_id, brewery_id) means the stamp already exists;
// that is a success with created=false, not an error.
func (r *Repository) Insert(ctx context.Context, userID, breweryID, trailID uuid.UUID, method enums.ValidationMethod) (bool, error) {
	stamp := models.Stamp{
		ID:               uuid.New(),
		UserID:           userID,
		BreweryID:        breweryID,
		TrailID:          trailID,
		ValidationMethod: method,
	}
	err := r.db.WithContext(ctx).Create(&stamp).Error
	if err != nil {
		if db.IsUniqueViolation(err, "idx_stamps_user_brewery") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListForUser returns the user's stamps, newest first, with the brewery name
// and position preloaded. A nil trailID skips the trail filter.
func (r *Repository) ListForUser(ctx context.Context, userID uuid.UUID, trailID *uuid.UUID) ([]models.Stamp, error) {
	query := r.db.WithContext(ctx).
		Preload("Brewery").
		Where("user_id = ?", userID).
		Order("validated_at DESC")

	if trailID != nil {
		query = query.Where("trail_id = ?", *trailID)
	}

	var list []models.Stamp
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListVisitedBreweryIDs returns the brewery IDs the user has stamped on a trail.
func (r *Repository) ListVisitedBreweryIDs(ctx context.Context, userID, trailID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.Stamp{}).
		Where("user_id = ? AND trail_id = ?", userID, trailID).
		Pluck("brewery_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CountByBrewery groups the trail's stamps per brewery name.
func (r *Repository) CountByBrewery(ctx context.Context, trailID uuid.UUID) (map[string]int64, error) {
	var rows []struct {
		Name  string
		Count int64
	}
	err := r.db.WithContext(ctx).
		Table("stamps s").
		Select("COALESCE(b.name, 'Unknown') AS name, COUNT(s.id) AS count").
		Joins("LEFT JOIN breweries b ON b.id = s.brewery_id").
		Where("s.trail_id = ?", trailID).
		Group("b.name").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Name] = row.Count
	}
	return out, nil
}
