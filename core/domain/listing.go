// ABOUTME: Listing domain models for local-search result entries
// ABOUTME: Defines listings, the self/competitor split, and scan results

package domain

import (
	"fmt"
	"net/url"
	"time"
)

// PositionBeyondPage is the sentinel position for a listing that was not
// observed on the first result page (the provider returns at most ~20).
const PositionBeyondPage = 999

// ScanSource identifies where a ScanResult came from.
type ScanSource string

const (
	// SourceLive marks results parsed from a real provider response
	SourceLive ScanSource = "live"

	// SourceFallback marks synthetic results from the fallback generator
	SourceFallback ScanSource = "fallback"
)

// ListingResult is a single entry from the provider's local results page.
// It is produced fresh per call and never mutated afterwards.
type ListingResult struct {
	// Title is the listing's display name as returned by the provider
	Title string

	// Rating is the average star rating, 0.0 to 5.0 (0 when unrated)
	Rating float64

	// Reviews is the review count, always >= 0
	Reviews int

	// Position is the 1-based rank on the result page, or
	// PositionBeyondPage when the provider reported none
	Position int

	// Address is the listing's street address; empty when not provided
	Address string

	// PlaceID is the provider's place identifier; empty when not provided
	PlaceID string
}

// MapsURL returns a map link for the listing, or an empty string when no
// place identifier is available.
func (l ListingResult) MapsURL() string {
	if l.PlaceID == "" {
		return ""
	}
	return "https://www.google.com/maps/place/?q=place_id:" + url.QueryEscape(l.PlaceID)
}

// Display renders the listing the way presentation surfaces show
// competitors, e.g. "仁心堂中醫 (4.2⭐)".
func (l ListingResult) Display() string {
	return fmt.Sprintf("%s (%.1f⭐)", l.Title, l.Rating)
}

// IdentifiedListing is a ListingResult with the self/competitor decision
// attached. The flag is assigned exactly once by the classifier.
type IdentifiedListing struct {
	ListingResult

	// IsSelf is true when the classifier matched this listing to our own
	// location
	IsSelf bool
}

// ScanResult is the outcome of one scan of a (location, keyword) area.
//
// Invariant: Self is always populated. When no candidate matched, it is a
// synthetic placeholder with Position set to PositionBeyondPage, so consumers
// never branch on "no self data".
type ScanResult struct {
	// Self is our own listing, real or placeholder
	Self IdentifiedListing

	// Competitors are the other observed listings, sorted by position
	Competitors []IdentifiedListing

	// Source records whether the data came from the live path or the
	// fallback generator
	Source ScanSource

	// ScannedAt is when the underlying fetch happened (cached reads keep
	// the original timestamp)
	ScannedAt time.Time
}

// SelfFound reports whether the self entry is a real observed listing
// rather than the not-on-page placeholder.
func (r ScanResult) SelfFound() bool {
	return r.Self.Position != PositionBeyondPage
}

// TopCompetitors returns up to n competitors in position order.
func (r ScanResult) TopCompetitors(n int) []IdentifiedListing {
	if n > len(r.Competitors) {
		n = len(r.Competitors)
	}
	return r.Competitors[:n]
}
