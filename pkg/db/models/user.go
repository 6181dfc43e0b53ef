package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/pkg/types"
)

// User is a trail visitor. Preferences is a loose JSONB taste profile.
type User struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TrailID     uuid.UUID         `gorm:"column:trail_id;type:uuid;not null;index" json:"trail_id"`
	DisplayName *string           `gorm:"column:display_name" json:"display_name,omitempty"`
	Preferences types.Preferences `gorm:"column:preferences;type:jsonb" json:"preferences,omitempty"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
