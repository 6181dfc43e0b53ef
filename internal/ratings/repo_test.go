package ratings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	"github.com/shawndjkidd/aletrail-platform/pkg/pagination"
)

func setupRatingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	breweries := `
CREATE TABLE IF NOT EXISTS breweries (
  id TEXT PRIMARY KEY,
  trail_id TEXT NOT NULL,
  name TEXT NOT NULL,
  subtitle TEXT,
  district TEXT,
  address TEXT,
  tagline TEXT,
  description TEXT,
  facebook_url TEXT,
  instagram_url TEXT,
  website_url TEXT,
  google_maps_url TEXT,
  logo_url TEXT,
  secret_code TEXT NOT NULL,
  beer_menu TEXT,
  position INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	ratings := `
CREATE TABLE IF NOT EXISTS ratings (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  brewery_id TEXT NOT NULL,
  beer_id TEXT,
  rating INTEGER NOT NULL,
  review TEXT,
  flavors_enjoyed TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	uniqueBeer := `
CREATE UNIQUE INDEX IF NOT EXISTS idx_ratings_user_brewery_beer
  ON ratings (user_id, brewery_id, beer_id) WHERE beer_id IS NOT NULL;`
	uniqueBrewery := `
CREATE UNIQUE INDEX IF NOT EXISTS idx_ratings_user_brewery
  ON ratings (user_id, brewery_id) WHERE beer_id IS NULL;`

	for _, stmt := range []string{breweries, ratings, uniqueBeer, uniqueBrewery} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	db := setupRatingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	breweryID := uuid.New()

	first, err := repo.Upsert(ctx, UpsertInput{
		UserID:    userID,
		BreweryID: breweryID,
		Rating:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, first.Rating)

	review := "better on the second visit"
	second, err := repo.Upsert(ctx, UpsertInput{
		UserID:    userID,
		BreweryID: breweryID,
		Rating:    5,
		Review:    &review,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "resubmission must overwrite, not duplicate")
	assert.Equal(t, 5, second.Rating)
	require.NotNil(t, second.Review)
	assert.Equal(t, review, *second.Review)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertBeerAndBreweryRatingsAreDistinct(t *testing.T) {
	db := setupRatingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	breweryID := uuid.New()
	beerID := uuid.New()

	breweryLevel, err := repo.Upsert(ctx, UpsertInput{
		UserID:    userID,
		BreweryID: breweryID,
		Rating:    2,
	})
	require.NoError(t, err)

	beerLevel, err := repo.Upsert(ctx, UpsertInput{
		UserID:    userID,
		BreweryID: breweryID,
		BeerID:    &beerID,
		Rating:    5,
	})
	require.NoError(t, err)

	assert.NotEqual(t, breweryLevel.ID, beerLevel.ID)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	again, err := repo.Upsert(ctx, UpsertInput{
		UserID:    userID,
		BreweryID: breweryID,
		BeerID:    &beerID,
		Rating:    4,
	})
	require.NoError(t, err)
	assert.Equal(t, beerLevel.ID, again.ID)
}

func TestListByUserNewestFirstWithPagination(t *testing.T) {
	db := setupRatingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	for i, breweryID := range []uuid.UUID{uuid.New(), uuid.New(), uuid.New()} {
		_, err := repo.Upsert(ctx, UpsertInput{
			UserID:    userID,
			BreweryID: breweryID,
			Rating:    i + 1,
		})
		require.NoError(t, err)
		require.NoError(t, db.Exec(
			`UPDATE ratings SET created_at = ? WHERE brewery_id = ?`,
			// spread timestamps so ordering is deterministic
			[]string{"2026-01-01 10:00:00", "2026-01-02 10:00:00", "2026-01-03 10:00:00"}[i],
			breweryID,
		).Error)
	}

	page, next, err := repo.ListByUser(ctx, userID, pagination.Params{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 3, page[0].Rating, "newest rating first")
	require.NotEmpty(t, next)

	rest, last, err := repo.ListByUser(ctx, userID, pagination.Params{Limit: 2, Cursor: next})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, 1, rest[0].Rating)
	assert.Empty(t, last)
}

func TestListByBreweryNewestFirst(t *testing.T) {
	db := setupRatingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	breweryID := uuid.New()
	for _, rating := range []int{5, 2} {
		_, err := repo.Upsert(ctx, UpsertInput{
			UserID:    uuid.New(),
			BreweryID: breweryID,
			Rating:    rating,
		})
		require.NoError(t, err)
	}
	_, err := repo.Upsert(ctx, UpsertInput{UserID: uuid.New(), BreweryID: uuid.New(), Rating: 1})
	require.NoError(t, err)

	list, err := repo.ListByBrewery(ctx, breweryID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
