package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Rating is a user's 1-5 score for a brewery, optionally pinned to one beer.
// BeerID is NULL for brewery-level ratings; the partial unique indexes in the
// schema enforce one row per (user, brewery, beer) either way.
type Rating struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	BreweryID      uuid.UUID      `gorm:"column:brewery_id;type:uuid;not null;index" json:"brewery_id"`
	BeerID         *uuid.UUID     `gorm:"column:beer_id;type:uuid" json:"beer_id,omitempty"`
	Rating         int            `gorm:"column:rating;not null" json:"rating"`
	Review         *string        `gorm:"column:review" json:"review,omitempty"`
	FlavorsEnjoyed pq.StringArray `gorm:"column:flavors_enjoyed;type:text[]" json:"flavors_enjoyed,omitempty"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Brewery *Brewery `gorm:"foreignKey:BreweryID" json:"-"`
}
