package breweries

import (
	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	"github.com/shawndjkidd/aletrail-platform/pkg/types"
)

// BreweryDTO is the public shape of a brewery. It deliberately has no field
// for the secret code.
type BreweryDTO struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Subtitle      *string        `json:"subtitle,omitempty"`
	District      *string        `json:"district,omitempty"`
	Address       *string        `json:"address,omitempty"`
	Tagline       *string        `json:"tagline,omitempty"`
	Description   *string        `json:"description,omitempty"`
	FacebookURL   *string        `json:"facebook_url,omitempty"`
	InstagramURL  *string        `json:"instagram_url,omitempty"`
	WebsiteURL    *string        `json:"website_url,omitempty"`
	GoogleMapsURL *string        `json:"google_maps_url,omitempty"`
	LogoURL       *string        `json:"logo_url,omitempty"`
	BeerMenu      types.BeerMenu `json:"beer_menu"`
	Position      int            `json:"position"`
	IsActive      bool           `json:"is_active"`
}

// ToDTO maps a brewery row to its public shape.
func ToDTO(m models.Brewery) BreweryDTO {
	return BreweryDTO{
		ID:            m.ID,
		Name:          m.Name,
		Subtitle:      m.Subtitle,
		District:      m.District,
		Address:       m.Address,
		Tagline:       m.Tagline,
		Description:   m.Description,
		FacebookURL:   m.FacebookURL,
		InstagramURL:  m.InstagramURL,
		WebsiteURL:    m.WebsiteURL,
		GoogleMapsURL: m.GoogleMapsURL,
		LogoURL:       m.LogoURL,
		BeerMenu:      m.BeerMenu,
		Position:      m.Position,
		IsActive:      m.IsActive,
	}
}
