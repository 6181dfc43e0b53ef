package ratings

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db"
	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	"github.com/shawndjkidd/aletrail-platform/pkg/pagination"
)

// Repository encapsulates rating persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a rating repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertInput carries the writable rating fields.
type UpsertInput struct {
	UserID         uuid.UUID
	BreweryID      uuid.UUID
	BeerID         *uuid.UUID
	Rating         int
	Review         *string
	FlavorsEnjoyed []string
}

// Upsert creates the (user, brewery, beer) rating or overwrites the existing
// one. A nil BeerID matches only brewery-level rows; a concurrent insert that
// loses the unique-index race falls back to the update path.
func (r *Repository) Upsert(ctx context.Context, input UpsertInput) (*models.Rating, error) {
	existing, err := r.find(ctx, input.UserID, input.BreweryID, input.BeerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		return r.update(ctx, existing.ID, input)
	}

	row := models.Rating{
		ID:             uuid.New(),
		UserID:         input.UserID,
		BreweryID:      input.BreweryID,
		BeerID:         input.BeerID,
		Rating:         input.Rating,
		Review:         input.Review,
		FlavorsEnjoyed: pq.StringArray(input.FlavorsEnjoyed),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if db.IsUniqueViolation(err, "idx_ratings_user_brewery") || db.IsUniqueViolation(err, "idx_ratings_user_brewery_beer") {
			lost, findErr := r.find(ctx, input.UserID, input.BreweryID, input.BeerID)
			if findErr != nil {
				return nil, findErr
			}
			return r.update(ctx, lost.ID, input)
		}
		return nil, err
	}
	return &row, nil
}

func (r *Repository) find(ctx context.Context, userID, breweryID uuid.UUID, beerID *uuid.UUID) (*models.Rating, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND brewery_id = ?", userID, breweryID)
	if beerID == nil {
		query = query.Where("beer_id IS NULL")
	} else {
		query = query.Where("beer_id = ?", *beerID)
	}

	var row models.Rating
	if err := query.First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) update(ctx context.Context, id uuid.UUID, input UpsertInput) (*models.Rating, error) {
	updates := map[string]any{
		"rating":          input.Rating,
		"review":          input.Review,
		"flavors_enjoyed": pq.StringArray(input.FlavorsEnjoyed),
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("id = ?", id).
		Updates(updates).
		Error; err != nil {
		return nil, err
	}

	var row models.Rating
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByUser returns the user's ratings, newest first, with the brewery
// preloaded, paginated by cursor.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]models.Rating, string, error) {
	normalizedLimit := pagination.NormalizeLimit(params.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(params.Limit)
	decodedCursor, err := pagination.ParseCursor(strings.TrimSpace(params.Cursor))
	if err != nil {
		return nil, "", err
	}

	query := r.db.WithContext(ctx).
		Preload("Brewery").
		Where("user_id = ?", userID)

	if decodedCursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID)
	}

	var list []models.Rating
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limitWithBuffer).
		Find(&list).
		Error; err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(list) > normalizedLimit {
		list = list[:normalizedLimit]
		last := list[len(list)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return list, nextCursor, nil
}

// ListByBrewery returns all ratings for a brewery, newest first.
func (r *Repository) ListByBrewery(ctx context.Context, breweryID uuid.UUID) ([]models.Rating, error) {
	var list []models.Rating
	err := r.db.WithContext(ctx).
		Where("brewery_id = ?", breweryID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
