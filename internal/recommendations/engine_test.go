package recommendations

import (
	"testing"

	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	"github.com/shawndjkidd/aletrail-platform/pkg/types"
)

func brewery(name string, position int, beers ...types.Beer) models.Brewery {
	return models.Brewery{
		ID:       uuid.New(),
		Name:     name,
		Position: position,
		BeerMenu: types.BeerMenu(beers),
		IsActive: true,
	}
}

func beer(name string, flavors ...string) types.Beer {
	return types.Beer{Name: name, Flavors: flavors}
}

func TestRecommendAllVisited(t *testing.T) {
	a := brewery("A", 1)
	b := brewery("B", 2)

	result := Recommend([]string{"hoppy"}, []models.Brewery{a, b}, []uuid.UUID{a.ID, b.ID})

	if len(result.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(result.Recommendations))
	}
	if result.Message != "You've visited all breweries! 🎉" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestRecommendNoPreferencesUsesPositionOrder(t *testing.T) {
	list := []models.Brewery{
		brewery("First", 1),
		brewery("Second", 2),
		brewery("Third", 3),
		brewery("Fourth", 4),
	}

	result := Recommend(nil, list, nil)

	if len(result.Recommendations) != 3 {
		t.Fatalf("expected three recommendations, got %d", len(result.Recommendations))
	}
	if result.Recommendations[0].Name != "First" || result.Recommendations[2].Name != "Third" {
		t.Fatalf("unexpected order: %+v", result.Recommendations)
	}
	if result.Message != "Start your journey at these breweries!" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if result.Recommendations[0].Reason != "" {
		t.Fatalf("expected empty reason, got %q", result.Recommendations[0].Reason)
	}
}

func TestRecommendScoresFlavorPairs(t *testing.T) {
	strong := brewery("Strong", 2,
		beer("Hop Bomb", "hoppy", "citrus"),
		beer("Citra Haze", "citrus"),
	)
	weak := brewery("Weak", 1, beer("Amber", "malty", "citrus"))
	none := brewery("None", 3, beer("Stout", "roasty"))

	result := Recommend([]string{"hoppy", "citrus"}, []models.Brewery{weak, strong, none}, nil)

	if len(result.Recommendations) != 2 {
		t.Fatalf("expected two recommendations, got %d", len(result.Recommendations))
	}
	if result.Recommendations[0].Name != "Strong" || result.Recommendations[0].Score != 3 {
		t.Fatalf("unexpected first pick: %+v", result.Recommendations[0])
	}
	if result.Recommendations[1].Name != "Weak" || result.Recommendations[1].Score != 1 {
		t.Fatalf("unexpected second pick: %+v", result.Recommendations[1])
	}
	if result.Message != "Based on your ratings, we think you'll love these:" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestRecommendReasonNamesFirstMatchingBeer(t *testing.T) {
	target := brewery("Target", 1,
		beer("Lager", "crisp"),
		beer("Hop Bomb", "hoppy", "citrus"),
		beer("Another IPA", "hoppy"),
	)

	result := Recommend([]string{"hoppy", "citrus"}, []models.Brewery{target}, nil)

	if len(result.Recommendations) != 1 {
		t.Fatalf("expected one recommendation, got %d", len(result.Recommendations))
	}
	want := "Try their Hop Bomb - matches your love of hoppy, citrus"
	if result.Recommendations[0].Reason != want {
		t.Fatalf("unexpected reason: %q", result.Recommendations[0].Reason)
	}
}

func TestRecommendStableTieOrder(t *testing.T) {
	first := brewery("First", 1, beer("A", "hoppy"))
	second := brewery("Second", 2, beer("B", "hoppy"))
	third := brewery("Third", 3, beer("C", "hoppy"))

	result := Recommend([]string{"hoppy"}, []models.Brewery{first, second, third}, nil)

	if len(result.Recommendations) != 3 {
		t.Fatalf("expected three recommendations, got %d", len(result.Recommendations))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if result.Recommendations[i].Name != want {
			t.Fatalf("expected %s at %d, got %s", want, i, result.Recommendations[i].Name)
		}
	}
}

func TestRecommendCapsAtThree(t *testing.T) {
	list := []models.Brewery{
		brewery("A", 1, beer("a", "hoppy")),
		brewery("B", 2, beer("b", "hoppy")),
		brewery("C", 3, beer("c", "hoppy")),
		brewery("D", 4, beer("d", "hoppy")),
	}

	result := Recommend([]string{"hoppy"}, list, nil)
	if len(result.Recommendations) != 3 {
		t.Fatalf("expected three recommendations, got %d", len(result.Recommendations))
	}
}

func TestRecommendNoMatchesFallsBackToPosition(t *testing.T) {
	list := []models.Brewery{
		brewery("First", 1, beer("Stout", "roasty")),
		brewery("Second", 2, beer("Amber", "malty")),
	}

	result := Recommend([]string{"sour"}, list, nil)

	if len(result.Recommendations) != 2 {
		t.Fatalf("expected two recommendations, got %d", len(result.Recommendations))
	}
	if result.Message != "Keep exploring!" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if result.Recommendations[0].Reason != "Continue your ale trail adventure!" {
		t.Fatalf("unexpected reason: %q", result.Recommendations[0].Reason)
	}
	if result.Recommendations[0].Score != 0 {
		t.Fatalf("expected zero score, got %d", result.Recommendations[0].Score)
	}
}

func TestRecommendSkipsVisited(t *testing.T) {
	visited := brewery("Visited", 1, beer("a", "hoppy"))
	fresh := brewery("Fresh", 2, beer("b", "hoppy"))

	result := Recommend([]string{"hoppy"}, []models.Brewery{visited, fresh}, []uuid.UUID{visited.ID})

	if len(result.Recommendations) != 1 {
		t.Fatalf("expected one recommendation, got %d", len(result.Recommendations))
	}
	if result.Recommendations[0].Name != "Fresh" {
		t.Fatalf("unexpected recommendation: %s", result.Recommendations[0].Name)
	}
}

func TestRecommendEmptyMenuNeverScores(t *testing.T) {
	empty := brewery("Empty", 1)

	result := Recommend([]string{"hoppy"}, []models.Brewery{empty}, nil)

	if result.Message != "Keep exploring!" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}
