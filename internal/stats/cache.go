package stats

import (
	"sync"
	"time"
)

// DefaultTTL is the caching window for identical queries.
const DefaultTTL = time.Hour

// queryCache is a TTL cache keyed by the exact query tuple. Entries are
// never invalidated early; expired entries are dropped on access.
type queryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	result   Result
	cachedAt time.Time
}

func newQueryCache(ttl time.Duration, now func() time.Time) *queryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &queryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// get retrieves a cached result if present and not expired.
func (c *queryCache) get(key string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return Result{}, false
	}
	if c.now().Sub(entry.cachedAt) > c.ttl {
		delete(c.entries, key)
		return Result{}, false
	}
	return entry.result, true
}

// set stores a result under the query key.
func (c *queryCache) set(key string, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: result, cachedAt: c.now()}
}

// size returns the number of cached entries, expired or not.
func (c *queryCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
