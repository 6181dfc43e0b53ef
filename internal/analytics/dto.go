package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	"github.com/shawndjkidd/aletrail-platform/pkg/types"
)

// ReportStatsDTO is the event breakdown inside an analytics report.
type ReportStatsDTO struct {
	TotalEvents      int64 `json:"totalEvents"`
	StampCollections int64 `json:"stampCollections"`
	QRScans          int64 `json:"qrScans"`
	RatingsSubmitted int64 `json:"ratingsSubmitted"`
	TotalUsers       int64 `json:"totalUsers"`
}

// EventDTO is one analytics event in a report listing.
type EventDTO struct {
	ID        uuid.UUID       `json:"id"`
	TrailID   uuid.UUID       `json:"trail_id"`
	UserID    *uuid.UUID      `json:"user_id,omitempty"`
	BreweryID *uuid.UUID      `json:"brewery_id,omitempty"`
	EventType string          `json:"event_type"`
	EventData types.EventData `json:"event_data,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ReportDTO is the admin analytics payload for one trail.
type ReportDTO struct {
	Stats           ReportStatsDTO   `json:"stats"`
	StampsByBrewery map[string]int64 `json:"stampsByBrewery"`
	RecentEvents    []EventDTO       `json:"recentEvents"`
}

func toEventDTO(m models.AnalyticsEvent) EventDTO {
	return EventDTO{
		ID:        m.ID,
		TrailID:   m.TrailID,
		UserID:    m.UserID,
		BreweryID: m.BreweryID,
		EventType: m.EventType.String(),
		EventData: m.EventData,
		CreatedAt: m.CreatedAt,
	}
}
