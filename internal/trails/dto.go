package trails

import (
	"time"

	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
)

// TrailDTO is the public shape of a trail.
type TrailDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Subdomain   string    `json:"subdomain"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TrailStatsDTO aggregates activity counts for a trail. AverageRating is a
// string to preserve the two-decimal formatting of the public API.
type TrailStatsDTO struct {
	TotalStamps   int64  `json:"totalStamps"`
	TotalRatings  int64  `json:"totalRatings"`
	TotalUsers    int64  `json:"totalUsers"`
	AverageRating string `json:"averageRating"`
}

func toDTO(m models.Trail) TrailDTO {
	return TrailDTO{
		ID:          m.ID,
		Name:        m.Name,
		Subdomain:   m.Subdomain,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
