package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/Alonso287/onthisday/internal/event"
)

// DefaultTTL is how long a fetched day stays cached. The feed content for a
// given month/day changes rarely, so a day is plenty.
const DefaultTTL = 24 * time.Hour

type cacheKey struct {
	Month int
	Day   int
}

// Cache holds fetched event lists per (month, day) with a TTL.
type Cache struct {
	mu       sync.Mutex
	events   map[cacheKey][]event.Event
	cachedAt map[cacheKey]time.Time
	ttl      time.Duration
}

// NewCache creates a cache with the default TTL.
func NewCache() *Cache {
	return NewCacheWithTTL(DefaultTTL)
}

// NewCacheWithTTL creates a cache with a specific TTL.
func NewCacheWithTTL(ttl time.Duration) *Cache {
	return &Cache{
		events:   make(map[cacheKey][]event.Event),
		cachedAt: make(map[cacheKey]time.Time),
		ttl:      ttl,
	}
}

// Get retrieves the cached events for a day, or nil if absent or expired.
func (c *Cache) Get(month, day int) []event.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{month, day}
	events, exists := c.events[key]
	if !exists {
		return nil
	}

	cachedTime, hasTime := c.cachedAt[key]
	if !hasTime || time.Since(cachedTime) > c.ttl {
		delete(c.events, key)
		delete(c.cachedAt, key)
		return nil
	}

	return events
}

// Set stores the events for a day.
func (c *Cache) Set(month, day int, events []event.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{month, day}
	c.events[key] = events
	c.cachedAt[key] = time.Now()
}

// CleanExpired removes expired entries and returns how many were removed.
func (c *Cache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	now := time.Now()
	for key, cachedTime := range c.cachedAt {
		if now.Sub(cachedTime) > c.ttl {
			delete(c.events, key)
			delete(c.cachedAt, key)
			removed++
		}
	}
	return removed
}

// Size returns the number of cached days.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

// CachedSource wraps a Source with a Cache.
type CachedSource struct {
	source Source
	cache  *Cache
}

// NewCachedSource wraps src with cache. A nil cache gets the default TTL.
func NewCachedSource(src Source, cache *Cache) *CachedSource {
	if cache == nil {
		cache = NewCache()
	}
	return &CachedSource{source: src, cache: cache}
}

// Events returns the cached events for the day, fetching through to the
// underlying source on a miss. Fetch failures are never cached.
func (s *CachedSource) Events(ctx context.Context, month, day int) ([]event.Event, error) {
	if events := s.cache.Get(month, day); events != nil {
		return events, nil
	}

	events, err := s.source.Events(ctx, month, day)
	if err != nil {
		return nil, err
	}

	s.cache.Set(month, day, events)
	return events, nil
}
