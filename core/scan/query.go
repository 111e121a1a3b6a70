// ABOUTME: Query builder for local-search requests
// ABOUTME: Validates coordinates and keywords and produces the cache signature

package scan

import (
	"fmt"

	"localrank-app-api/core/domain"
	"localrank-app-api/core/errors"
)

// DefaultZoom is the map zoom used when none is configured. 15z is roughly
// street level, approximating a 1 km local-search radius.
const DefaultZoom = "15z"

// Query describes one local-search request: what to search for, where, and
// how wide. It is immutable once built and doubles as the cache signature.
type Query struct {
	locationName string
	keyword      domain.Keyword
	lat          float64
	lng          float64
	zoom         string
}

// NewQuery validates the inputs and builds a query descriptor. It has no
// side effects; out-of-range coordinates or an empty keyword fail with a
// ValidationError.
func NewQuery(location domain.Location, keyword domain.Keyword, zoom string) (Query, error) {
	if location.Name == "" {
		return Query{}, &errors.ValidationError{Field: "location.name", Message: "cannot be empty"}
	}

	if location.Latitude < -90 || location.Latitude > 90 {
		return Query{}, &errors.ValidationError{Field: "location.latitude", Message: "must be between -90 and 90"}
	}

	if location.Longitude < -180 || location.Longitude > 180 {
		return Query{}, &errors.ValidationError{Field: "location.longitude", Message: "must be between -180 and 180"}
	}

	if keyword == "" {
		return Query{}, &errors.ValidationError{Field: "keyword", Message: "cannot be empty"}
	}

	if zoom == "" {
		zoom = DefaultZoom
	}

	return Query{
		locationName: location.Name,
		keyword:      keyword,
		lat:          location.Latitude,
		lng:          location.Longitude,
		zoom:         zoom,
	}, nil
}

// LocationName returns the name of the location being scanned.
func (q Query) LocationName() string {
	return q.locationName
}

// Keyword returns the free-text search term.
func (q Query) Keyword() domain.Keyword {
	return q.keyword
}

// Center returns the search center coordinates.
func (q Query) Center() (lat, lng float64) {
	return q.lat, q.lng
}

// Zoom returns the map zoom parameter.
func (q Query) Zoom() string {
	return q.zoom
}

// CacheKey returns the full query signature used to memoize scan results.
// Every field that influences the provider response is part of the key.
func (q Query) CacheKey() string {
	return fmt.Sprintf("scan:%s:%s:@%f,%f,%s", q.locationName, q.keyword, q.lat, q.lng, q.zoom)
}
