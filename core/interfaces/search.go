package interfaces

import (
	"context"

	"localrank-app-api/core/domain"
)

// SearchQuery is the opaque query descriptor passed to a SearchClient. It is
// built and validated by the scan package's query builder; clients only read
// it.
type SearchQuery interface {
	// Keyword returns the free-text search term
	Keyword() domain.Keyword

	// Center returns the search center coordinates
	Center() (lat, lng float64)

	// Zoom returns the map zoom parameter, e.g. "15z"
	Zoom() string
}

// SearchClient performs one blocking local-search call against the external
// provider. Implementations make exactly one attempt per call; pacing and
// failure policy belong to the caller.
type SearchClient interface {
	// LocalSearch returns the first page of listings, ordered as the
	// provider returned them. A response-level error indicator or a
	// transport failure surfaces as a *errors.ServiceError.
	LocalSearch(ctx context.Context, query SearchQuery) ([]domain.ListingResult, error)

	// Configured reports whether a credential is available. Callers use
	// this to decide between the live path and the fallback generator
	// before any network call.
	Configured() bool
}

// ProgressSink receives advisory batch progress after each completed
// (location, keyword) pair. It must not influence control flow; a nil sink
// is always allowed.
type ProgressSink func(completed, total int)
