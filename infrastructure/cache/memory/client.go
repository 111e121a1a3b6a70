// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides TTL support with lazy expiry judged at read time

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"localrank-app-api/core/interfaces"
)

// cleanupInterval is how often expired entries are purged in the
// background. Reads never see expired entries regardless.
const cleanupInterval = 10 * time.Minute

// MemoryCache implements the Cache interface using an in-process store.
// The default backend for single-process deployments.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance.
func NewMemoryCache(defaultExpiration time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, interfaces.ErrCacheMiss
	}

	stored, ok := value.([]byte)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	// Return a copy so callers can never mutate the stored value
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	c.cache.Set(key, stored, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.cache.Delete(key)
	return nil
}

// Count returns the number of items currently stored, expired included
// until the next cleanup pass.
func (c *MemoryCache) Count() int {
	return c.cache.ItemCount()
}
