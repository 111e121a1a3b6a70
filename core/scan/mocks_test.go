package scan

import (
	"context"
	"sync"
	"time"

	"localrank-app-api/core/domain"
	"localrank-app-api/core/interfaces"
)

// mockSearchClient is a mock implementation of the SearchClient interface
type mockSearchClient struct {
	searchFunc func(ctx context.Context, query interfaces.SearchQuery) ([]domain.ListingResult, error)
	configured bool

	mu    sync.Mutex
	calls int
}

func (m *mockSearchClient) LocalSearch(ctx context.Context, query interfaces.SearchQuery) ([]domain.ListingResult, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockSearchClient) Configured() bool {
	return m.configured
}

func (m *mockSearchClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockCache is a mock implementation of the Cache interface backed by a map
// with real TTL bookkeeping.
type mockCache struct {
	mu      sync.Mutex
	entries map[string]mockEntry

	getFunc func(ctx context.Context, key string) ([]byte, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type mockEntry struct {
	value   []byte
	expires time.Time
	ttl     time.Duration
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]mockEntry)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok || time.Now().After(entry.expires) {
		return nil, interfaces.ErrCacheMiss
	}
	return entry.value, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = mockEntry{value: value, expires: time.Now().Add(ttl), ttl: ttl}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *mockCache) ttlOf(key string) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	return entry.ttl, ok
}

// mockLogger is a no-op implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
