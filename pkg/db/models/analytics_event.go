package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/pkg/enums"
	"github.com/shawndjkidd/aletrail-platform/pkg/types"
)

// AnalyticsEvent is an append-only telemetry row. The core never reads these;
// only the admin report does.
type AnalyticsEvent struct {
	ID        uuid.UUID                `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TrailID   uuid.UUID                `gorm:"column:trail_id;type:uuid;not null;index" json:"trail_id"`
	UserID    *uuid.UUID               `gorm:"column:user_id;type:uuid" json:"user_id,omitempty"`
	BreweryID *uuid.UUID               `gorm:"column:brewery_id;type:uuid" json:"brewery_id,omitempty"`
	EventType enums.AnalyticsEventType `gorm:"column:event_type;not null" json:"event_type"`
	EventData types.EventData          `gorm:"column:event_data;type:jsonb" json:"event_data,omitempty"`
	CreatedAt time.Time                `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
