package recommendations

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/internal/breweries"
	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
)

const maxRecommendations = 3

const (
	messageAllVisited   = "You've visited all breweries! 🎉"
	messageStartJourney = "Start your journey at these breweries!"
	messageKeepGoing    = "Keep exploring!"
	messageMatched      = "Based on your ratings, we think you'll love these:"

	reasonKeepGoing       = "Continue your ale trail adventure!"
	reasonFallback        = "Great match for your taste!"
	reasonMatchedTemplate = "Try their %s - matches your love of %s"
)

// RecommendationDTO is one ranked brewery with its score and reason.
type RecommendationDTO struct {
	breweries.BreweryDTO
	Score  int    `json:"score,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// EngineResult is the outcome of one recommendation pass.
type EngineResult struct {
	Recommendations []RecommendationDTO
	Message         string
}

// Recommend ranks unvisited breweries against the user's flavor preferences.
// Breweries must arrive ordered by position; ties keep that order. The score
// of a brewery is the number of (beer, flavor) pairs on its menu that match a
// preferred flavor, and the reason comes from the first beer that matched.
func Recommend(preferredFlavors []string, all []models.Brewery, visited []uuid.UUID) EngineResult {
	visitedSet := make(map[uuid.UUID]struct{}, len(visited))
	for _, id := range visited {
		visitedSet[id] = struct{}{}
	}

	unvisited := make([]models.Brewery, 0, len(all))
	for _, brewery := range all {
		if _, ok := visitedSet[brewery.ID]; !ok {
			unvisited = append(unvisited, brewery)
		}
	}

	if len(unvisited) == 0 {
		return EngineResult{
			Recommendations: []RecommendationDTO{},
			Message:         messageAllVisited,
		}
	}

	if len(preferredFlavors) == 0 {
		return EngineResult{
			Recommendations: topByPosition(unvisited, ""),
			Message:         messageStartJourney,
		}
	}

	preferred := make(map[string]struct{}, len(preferredFlavors))
	for _, flavor := range preferredFlavors {
		preferred[flavor] = struct{}{}
	}

	scored := make([]RecommendationDTO, 0, len(unvisited))
	for _, brewery := range unvisited {
		score := 0
		reason := ""
		for _, beer := range brewery.BeerMenu {
			matching := make([]string, 0, len(beer.Flavors))
			for _, flavor := range beer.Flavors {
				if _, ok := preferred[flavor]; ok {
					matching = append(matching, flavor)
				}
			}
			if len(matching) == 0 {
				continue
			}
			score += len(matching)
			if reason == "" {
				reason = fmt.Sprintf(reasonMatchedTemplate, beer.Name, strings.Join(matching, ", "))
			}
		}
		if score == 0 {
			continue
		}
		if reason == "" {
			reason = reasonFallback
		}
		rec := RecommendationDTO{
			BreweryDTO: breweries.ToDTO(brewery),
			Score:      score,
			Reason:     reason,
		}
		scored = append(scored, rec)
	}

	if len(scored) == 0 {
		return EngineResult{
			Recommendations: topByPosition(unvisited, reasonKeepGoing),
			Message:         messageKeepGoing,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}

	return EngineResult{
		Recommendations: scored,
		Message:         messageMatched,
	}
}

func topByPosition(unvisited []models.Brewery, reason string) []RecommendationDTO {
	limit := len(unvisited)
	if limit > maxRecommendations {
		limit = maxRecommendations
	}
	out := make([]RecommendationDTO, 0, limit)
	for _, brewery := range unvisited[:limit] {
		out = append(out, RecommendationDTO{
			BreweryDTO: breweries.ToDTO(brewery),
			Reason:     reason,
		})
	}
	return out
}
