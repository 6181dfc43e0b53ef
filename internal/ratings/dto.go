package ratings

import (
	"time"

	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
)

// RatingDTO is one rating row in API payloads.
type RatingDTO struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	BreweryID      uuid.UUID         `json:"brewery_id"`
	BeerID         *uuid.UUID        `json:"beer_id,omitempty"`
	Rating         int               `json:"rating"`
	Review         *string           `json:"review,omitempty"`
	FlavorsEnjoyed []string          `json:"flavors_enjoyed,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Brewery        *RatingBreweryDTO `json:"brewery,omitempty"`
}

// RatingBreweryDTO is the brewery slice embedded in a user's rating history.
type RatingBreweryDTO struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url,omitempty"`
}

// UserRatingsPageDTO is a cursor-paginated rating history.
type UserRatingsPageDTO struct {
	Ratings    []RatingDTO `json:"ratings"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

// BreweryStatsDTO aggregates a brewery's ratings. AverageRating keeps one
// decimal place as a string.
type BreweryStatsDTO struct {
	AverageRating string        `json:"averageRating"`
	TotalRatings  int           `json:"totalRatings"`
	Distribution  map[int]int64 `json:"distribution"`
}

// BreweryRatingsDTO is the public ratings view for one brewery.
type BreweryRatingsDTO struct {
	Ratings []RatingDTO     `json:"ratings"`
	Stats   BreweryStatsDTO `json:"stats"`
}

func toDTO(m models.Rating) RatingDTO {
	dto := RatingDTO{
		ID:             m.ID,
		UserID:         m.UserID,
		BreweryID:      m.BreweryID,
		BeerID:         m.BeerID,
		Rating:         m.Rating,
		Review:         m.Review,
		FlavorsEnjoyed: m.FlavorsEnjoyed,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Brewery != nil {
		dto.Brewery = &RatingBreweryDTO{
			Name:    m.Brewery.Name,
			LogoURL: m.Brewery.LogoURL,
		}
	}
	return dto
}
