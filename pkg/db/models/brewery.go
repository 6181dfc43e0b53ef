package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/pkg/types"
)

// Brewery is one stop on a trail. SecretCode is the venue credential and must
// never be serialized into public API payloads.
type Brewery struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TrailID       uuid.UUID      `gorm:"column:trail_id;type:uuid;not null;index"`
	Name          string         `gorm:"column:name;not null"`
	Subtitle      *string        `gorm:"column:subtitle"`
	District      *string        `gorm:"column:district"`
	Address       *string        `gorm:"column:address"`
	Tagline       *string        `gorm:"column:tagline"`
	Description   *string        `gorm:"column:description"`
	FacebookURL   *string        `gorm:"column:facebook_url"`
	InstagramURL  *string        `gorm:"column:instagram_url"`
	WebsiteURL    *string        `gorm:"column:website_url"`
	GoogleMapsURL *string        `gorm:"column:google_maps_url"`
	LogoURL       *string        `gorm:"column:logo_url"`
	SecretCode    string         `gorm:"column:secret_code;not null"`
	BeerMenu      types.BeerMenu `gorm:"column:beer_menu;type:jsonb"`
	Position      int            `gorm:"column:position;not null;default:0"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
