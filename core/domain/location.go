// ABOUTME: Location domain model represents a tracked business location
// ABOUTME: Provides validation logic for coordinates loaded from configuration

package domain

import "errors"

// Location represents one of our own business locations whose local-search
// rank is tracked. Locations are loaded once from configuration at startup
// and never mutated.
type Location struct {
	// Name is the business name used for self-identification in results
	Name string `yaml:"name"`

	// City is a human-readable city label for presentation
	City string `yaml:"city"`

	// Latitude is the search center latitude in decimal degrees
	Latitude float64 `yaml:"latitude"`

	// Longitude is the search center longitude in decimal degrees
	Longitude float64 `yaml:"longitude"`
}

// Validate checks that the location has a name and in-range coordinates.
func (l Location) Validate() error {
	if l.Name == "" {
		return errors.New("location name cannot be empty")
	}

	if l.Latitude < -90 || l.Latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}

	if l.Longitude < -180 || l.Longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}

	return nil
}

// Keyword is a search term tracked against every location.
type Keyword string

// Validate checks that the keyword is non-empty.
func (k Keyword) Validate() error {
	if k == "" {
		return errors.New("keyword cannot be empty")
	}
	return nil
}
