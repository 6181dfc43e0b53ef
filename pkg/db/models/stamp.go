package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/pkg/enums"
)

// Stamp proves a user validated a brewery's secret code. The unique index on
// (user_id, brewery_id) is the idempotence contract: collection is a
// conditional insert, never check-then-act.
type Stamp struct {
	ID               uuid.UUID              `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID           uuid.UUID              `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_stamps_user_brewery"`
	BreweryID        uuid.UUID              `gorm:"column:brewery_id;type:uuid;not null;uniqueIndex:idx_stamps_user_brewery"`
	TrailID          uuid.UUID              `gorm:"column:trail_id;type:uuid;not null;index"`
	ValidationMethod enums.ValidationMethod `gorm:"column:validation_method;not null"`
	ValidatedAt      time.Time              `gorm:"column:validated_at;autoCreateTime"`

	Brewery *Brewery `gorm:"foreignKey:BreweryID"`
}
