// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when a key is absent or expired.
// Staleness is judged lazily at read time; backends never promise proactive
// eviction.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the interface for cache operations.
// Implementations can be in-memory, Redis, SQLite, or any other backend.
//
// Example usage:
//
//	// Store a value
//	err := cache.Set(ctx, "scan:高堂中醫:中醫", data, 24*time.Hour)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, "scan:高堂中醫:中醫")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// fetch fresh
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss when the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
