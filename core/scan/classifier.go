// ABOUTME: Result classifier identifies our own listing among search candidates
// ABOUTME: Uses normalized-name substring matching, first match in page order

package scan

import (
	"sort"
	"strings"

	"localrank-app-api/core/domain"
)

// genericTokens are business-type suffixes stripped before matching, so that
// e.g. "高堂中醫" still matches "高堂中醫診所".
var genericTokens = []string{"診所", "中醫"}

// NormalizeName strips the generic business-type tokens from a name and
// trims whitespace, leaving the distinctive core string. Normalizing an
// already-normalized name returns it unchanged.
func NormalizeName(name string) string {
	for _, token := range genericTokens {
		name = strings.ReplaceAll(name, token, "")
	}
	return strings.TrimSpace(name)
}

// Classify splits the candidate listings into our own listing and its
// competitors.
//
// The match is a deliberate heuristic: candidates are scanned in their
// original (position-ascending) order and the first one whose normalized
// title contains the caller's normalized core string wins. There is no
// secondary tie-break and no similarity scoring; a short or generic core
// string can false-positive. Presentation behavior depends on these exact
// semantics, so do not upgrade them.
//
// When no candidate matches, the returned self entry is a synthetic
// placeholder positioned beyond the observed page; every candidate becomes a
// competitor. The result always contains exactly one self entry.
func Classify(selfName string, candidates []domain.ListingResult) domain.ScanResult {
	core := NormalizeName(selfName)

	var self *domain.IdentifiedListing
	competitors := make([]domain.IdentifiedListing, 0, len(candidates))

	for _, candidate := range candidates {
		if self == nil && strings.Contains(NormalizeName(candidate.Title), core) {
			self = &domain.IdentifiedListing{ListingResult: candidate, IsSelf: true}
			continue
		}
		competitors = append(competitors, domain.IdentifiedListing{ListingResult: candidate})
	}

	if self == nil {
		self = &domain.IdentifiedListing{
			ListingResult: domain.ListingResult{
				Title:    selfName,
				Position: domain.PositionBeyondPage,
			},
			IsSelf: true,
		}
	}

	sort.SliceStable(competitors, func(i, j int) bool {
		return competitors[i].Position < competitors[j].Position
	})

	return domain.ScanResult{
		Self:        *self,
		Competitors: competitors,
	}
}
