// ABOUTME: Fallback generator produces synthetic scan results
// ABOUTME: Used when no credential is configured or the live path fails

package scan

import (
	"fmt"
	"math"
	"math/rand"

	"localrank-app-api/core/domain"
)

// fallbackCompetitors are the fixed competitor names used in synthetic data.
var fallbackCompetitors = []string{"仁心堂中醫", "回春中醫", "保生大帝中醫", "華佗中醫"}

// FallbackGenerator produces scan results with the same shape as live ones,
// filled with randomized plausible values. Consumers never branch on
// provenance; only ScanResult.Source tells the difference.
type FallbackGenerator struct {
	rand *rand.Rand
}

// NewFallbackGenerator creates a generator backed by the given source.
// Tests pass a seeded source for determinism.
func NewFallbackGenerator(src rand.Source) *FallbackGenerator {
	return &FallbackGenerator{rand: rand.New(src)}
}

// Generate builds a synthetic scan result for the named location: one self
// listing plus four competitors. Positions are de-conflicted so no two
// listings share one, then the competitor list is sorted by position.
func (g *FallbackGenerator) Generate(selfName string) domain.ScanResult {
	selfPosition := g.rand.Intn(10) + 1

	self := domain.IdentifiedListing{
		ListingResult: domain.ListingResult{
			Title:    selfName,
			Rating:   g.rating(3.5, 4.9),
			Reviews:  g.rand.Intn(451) + 50,
			Position: selfPosition,
			PlaceID:  "mock_id_me",
		},
		IsSelf: true,
	}

	competitors := make([]domain.IdentifiedListing, 0, len(fallbackCompetitors))
	for i, name := range fallbackCompetitors {
		position := i + 1
		if position >= selfPosition {
			// Shift past the slot our own listing occupies
			position = i + 2
		}

		competitors = append(competitors, domain.IdentifiedListing{
			ListingResult: domain.ListingResult{
				Title:    name,
				Rating:   g.rating(3.0, 5.0),
				Reviews:  g.rand.Intn(791) + 10,
				Position: position,
				PlaceID:  fmt.Sprintf("mock_id_%d", i),
			},
		})
	}

	result := domain.ScanResult{
		Self:        self,
		Competitors: competitors,
		Source:      domain.SourceFallback,
	}

	// Competitor positions are strictly increasing by construction, so the
	// slice is already position-sorted.
	return result
}

// rating returns a random rating in [min, max] rounded to one decimal.
func (g *FallbackGenerator) rating(min, max float64) float64 {
	v := min + g.rand.Float64()*(max-min)
	return math.Round(v*10) / 10
}
