// ABOUTME: Rank domain models for cartesian rank-tracking runs
// ABOUTME: Defines rank records, display sentinels, and per-location summaries

package domain

import "sort"

const (
	// RankNotFound is the rank recorded when our listing was not observed
	// on the first result page
	RankNotFound = 21

	// RankNotFoundDisplay is the matching human-readable label
	RankNotFoundDisplay = "20+"

	// RankError is the rank recorded when a (location, keyword) pair
	// failed entirely
	RankError = 999

	// RankErrorDisplay is the matching human-readable label
	RankErrorDisplay = "Error"
)

// RankRecord is one cell of the location × keyword rank matrix. Records are
// immutable once appended to a run's result set.
type RankRecord struct {
	// Location is the tracked location's name
	Location string

	// Keyword is the search term this record was measured for
	Keyword Keyword

	// Rank is our listing's observed position, or RankNotFound /
	// RankError
	Rank int

	// RankDisplay is the human-readable rank ("2", "20+", "Error")
	RankDisplay string

	// TopCompetitors holds up to 3 display strings for the top page
	// entries, empty on error
	TopCompetitors []string
}

// LocationSummary is the per-location overview row consumed by dashboards.
type LocationSummary struct {
	// Name is the location's business name
	Name string

	// City is the location's city label
	City string

	// Rank is the self listing's area rank (PositionBeyondPage when not
	// observed)
	Rank int

	// Rating is the self listing's star rating
	Rating float64

	// Reviews is the self listing's review count
	Reviews int

	// NeedsAttention is set when the rating or rank falls outside the
	// healthy range
	NeedsAttention bool

	// AttentionReasons lists why the location was flagged, empty when
	// healthy
	AttentionReasons []string
}

// PageOrder merges the self listing (when observed) back into the
// competitor list and returns everything in position order, i.e. the result
// page as the provider showed it.
func (r ScanResult) PageOrder() []IdentifiedListing {
	listings := make([]IdentifiedListing, 0, len(r.Competitors)+1)
	if r.SelfFound() {
		listings = append(listings, r.Self)
	}
	listings = append(listings, r.Competitors...)

	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].Position < listings[j].Position
	})
	return listings
}
