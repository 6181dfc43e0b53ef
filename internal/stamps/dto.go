package stamps

import (
	"time"

	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
)

// StampDTO is a collected stamp with the brewery context the passport UI shows.
type StampDTO struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	BreweryID        uuid.UUID       `json:"brewery_id"`
	TrailID          uuid.UUID       `json:"trail_id"`
	ValidationMethod string          `json:"validation_method"`
	ValidatedAt      time.Time       `json:"validated_at"`
	Brewery          *StampBreweryDTO `json:"brewery,omitempty"`
}

// StampBreweryDTO is the brewery slice embedded in a stamp listing.
type StampBreweryDTO struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

func toDTO(m models.Stamp) StampDTO {
	dto := StampDTO{
		ID:               m.ID,
		UserID:           m.UserID,
		BreweryID:        m.BreweryID,
		TrailID:          m.TrailID,
		ValidationMethod: m.ValidationMethod.String(),
		ValidatedAt:      m.ValidatedAt,
	}
	if m.Brewery != nil {
		dto.Brewery = &StampBreweryDTO{
			Name:     m.Brewery.Name,
			Position: m.Brewery.Position,
		}
	}
	return dto
}
