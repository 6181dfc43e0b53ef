package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	"github.com/shawndjkidd/aletrail-platform/pkg/enums"
	"github.com/shawndjkidd/aletrail-platform/pkg/types"
)

// Repository encapsulates the append-only analytics event log.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an analytics repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Event captures the fields callers record.
type Event struct {
	TrailID   uuid.UUID
	UserID    *uuid.UUID
	BreweryID *uuid.UUID
	EventType enums.AnalyticsEventType
	EventData types.EventData
}

// Insert appends one event.
func (r *Repository) Insert(ctx context.Context, event Event) error {
	row := models.AnalyticsEvent{
		ID:        uuid.New(),
		TrailID:   event.TrailID,
		UserID:    event.UserID,
		BreweryID: event.BreweryID,
		EventType: event.EventType,
		EventData: event.EventData,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// CountsByType returns per-type event counts for a trail since the cutoff.
func (r *Repository) CountsByType(ctx context.Context, trailID uuid.UUID, since time.Time) (map[enums.AnalyticsEventType]int64, error) {
	var rows []struct {
		EventType string
		Count     int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.AnalyticsEvent{}).
		Select("event_type, COUNT(id) AS count").
		Where("trail_id = ? AND created_at >= ?", trailID, since).
		Group("event_type").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}

	out := make(map[enums.AnalyticsEventType]int64, len(rows))
	for _, row := range rows {
		out[enums.AnalyticsEventType(row.EventType)] = row.Count
	}
	return out, nil
}

// Recent returns the newest events for a trail since the cutoff, capped at limit.
func (r *Repository) Recent(ctx context.Context, trailID uuid.UUID, since time.Time, limit int) ([]models.AnalyticsEvent, error) {
	var list []models.AnalyticsEvent
	err := r.db.WithContext(ctx).
		Where("trail_id = ? AND created_at >= ?", trailID, since).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CountSince returns the total event count for a trail since the cutoff.
func (r *Repository) CountSince(ctx context.Context, trailID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AnalyticsEvent{}).
		Where("trail_id = ? AND created_at >= ?", trailID, since).
		Count(&count).
		Error
	return count, err
}
