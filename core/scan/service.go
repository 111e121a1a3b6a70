// ABOUTME: Scan service is the cached fetch-and-classify pipeline
// ABOUTME: Memoizes live or fallback scan results with TTL and single-flight

package scan

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"localrank-app-api/core/domain"
	"localrank-app-api/core/errors"
	"localrank-app-api/core/interfaces"
)

// Options configures the scan service's caching behavior.
type Options struct {
	// TTL is the cache lifetime for single-scan results (default 1 day)
	TTL time.Duration

	// BatchTTL is the cache lifetime for batch rank-tracking scans
	// (default 7 days; provider calls are priced, batches are expensive)
	BatchTTL time.Duration

	// FailureTTL, when set, caches fallback results produced after a
	// provider failure for a shorter window instead of the full TTL. Zero
	// keeps the compatible behavior: failures are memoized like live data.
	FailureTTL time.Duration

	// Zoom is the map zoom parameter for all queries (default "15z")
	Zoom string

	// Limiter, when set, gates every outbound provider call. It is shared
	// across concurrent fetchers: the scarce resource is the provider's
	// quota, not local compute. Cache hits are never throttled.
	Limiter *rate.Limiter
}

const (
	defaultTTL      = 24 * time.Hour
	defaultBatchTTL = 7 * 24 * time.Hour
)

// Service wraps the search client and classifier behind a TTL cache. A read
// with a fresh entry returns the stored value without touching the provider;
// a miss or expired entry triggers one fetch, whose result (live or fallback)
// is written back with a new TTL window.
type Service struct {
	deps     interfaces.Dependencies
	search   interfaces.SearchClient
	fallback *FallbackGenerator
	opts     Options
	group    singleflight.Group
	now      func() time.Time
}

// NewService creates a scan service instance.
func NewService(deps interfaces.Dependencies, search interfaces.SearchClient, opts Options) *Service {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.BatchTTL <= 0 {
		opts.BatchTTL = defaultBatchTTL
	}
	if opts.Zoom == "" {
		opts.Zoom = DefaultZoom
	}

	return &Service{
		deps:     deps,
		search:   search,
		fallback: NewFallbackGenerator(rand.NewSource(time.Now().UnixNano())),
		opts:     opts,
		now:      time.Now,
	}
}

// Scan runs the single-scan path for one (location, keyword) pair. A missing
// credential or a provider failure degrades to a fallback result rather than
// an error; only validation failures surface.
func (s *Service) Scan(ctx context.Context, location domain.Location, keyword domain.Keyword) (domain.ScanResult, error) {
	return s.cachedScan(ctx, location, keyword, s.opts.TTL, true)
}

// ScanStrict runs the batch path for one pair: same cache, longer TTL, and
// no fallback: provider failures surface as ServiceError so the caller can
// record them per pair.
func (s *Service) ScanStrict(ctx context.Context, location domain.Location, keyword domain.Keyword) (domain.ScanResult, error) {
	return s.cachedScan(ctx, location, keyword, s.opts.BatchTTL, false)
}

func (s *Service) cachedScan(ctx context.Context, location domain.Location, keyword domain.Keyword, ttl time.Duration, degrade bool) (domain.ScanResult, error) {
	query, err := NewQuery(location, keyword, s.opts.Zoom)
	if err != nil {
		return domain.ScanResult{}, err
	}

	key := query.CacheKey()

	if cached, ok := s.getCached(ctx, key); ok {
		return cached, nil
	}

	// Single-flight: concurrent fetchers for the same signature share one
	// provider call per TTL window.
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		if cached, ok := s.getCached(ctx, key); ok {
			return cached, nil
		}

		result, err := s.fetch(ctx, query, degrade)
		if err != nil {
			return domain.ScanResult{}, err
		}

		s.store(ctx, key, result, ttl)
		return result, nil
	})
	if err != nil {
		return domain.ScanResult{}, err
	}

	return cloneResult(v.(domain.ScanResult)), nil
}

// fetch runs the live pipeline, or the fallback generator when degradation
// is allowed and the live path is unavailable or failing.
func (s *Service) fetch(ctx context.Context, query Query, degrade bool) (domain.ScanResult, error) {
	if !s.search.Configured() {
		if !degrade {
			return domain.ScanResult{}, &errors.ConfigurationError{
				Setting: "SERPAPI_KEY",
				Message: "credential required for rank tracking runs",
			}
		}

		s.logWarn("no credential configured, using fallback data", query)
		return s.synthesize(query), nil
	}

	if s.opts.Limiter != nil {
		if err := s.opts.Limiter.Wait(ctx); err != nil {
			return domain.ScanResult{}, err
		}
	}

	candidates, err := s.search.LocalSearch(ctx, query)
	if err != nil {
		if degrade && errors.IsService(err) {
			s.logWarn("provider call failed, using fallback data", query)
			return s.synthesize(query), nil
		}
		return domain.ScanResult{}, err
	}

	result := Classify(query.LocationName(), candidates)
	result.Source = domain.SourceLive
	result.ScannedAt = s.now()

	s.deps.Logger.Debug("scan completed", map[string]interface{}{
		"location":   query.LocationName(),
		"keyword":    string(query.Keyword()),
		"candidates": len(candidates),
		"self_found": result.SelfFound(),
	})

	return result, nil
}

func (s *Service) synthesize(query Query) domain.ScanResult {
	result := s.fallback.Generate(query.LocationName())
	result.ScannedAt = s.now()
	return result
}

// getCached returns a fresh cached result for the key, if any. Cache errors
// (including misses) fall through to a fresh fetch.
func (s *Service) getCached(ctx context.Context, key string) (domain.ScanResult, bool) {
	if s.deps.Cache == nil {
		return domain.ScanResult{}, false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return domain.ScanResult{}, false
	}

	var result domain.ScanResult
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.ScanResult{}, false
	}

	return result, true
}

// store writes the result back with its TTL window. Fallback outcomes use
// the shorter failure TTL when one is configured; by default they are cached
// exactly like live data, provider outage included.
func (s *Service) store(ctx context.Context, key string, result domain.ScanResult, ttl time.Duration) {
	if s.deps.Cache == nil {
		return
	}

	if result.Source == domain.SourceFallback && s.opts.FailureTTL > 0 {
		ttl = s.opts.FailureTTL
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, ttl); err != nil {
		s.deps.Logger.Warn("failed to cache scan result", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (s *Service) logWarn(msg string, query Query) {
	s.deps.Logger.Warn(msg, map[string]interface{}{
		"location": query.LocationName(),
		"keyword":  string(query.Keyword()),
	})
}

// cloneResult returns a copy whose competitor slice is independent of the
// stored value, so callers can never mutate a cached entry.
func cloneResult(r domain.ScanResult) domain.ScanResult {
	competitors := make([]domain.IdentifiedListing, len(r.Competitors))
	copy(competitors, r.Competitors)
	r.Competitors = competitors
	return r
}
