package search

import (
	"sync"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
)

// cacheKey identifies one memoised query result set.
type cacheKey struct {
	query string
	limit int
}

// Cache memoises engine output keyed by (normalised query, limit).
// Capacity is bounded: once an insertion pushes the entry count past
// the cap, the oldest-inserted half of the entries is evicted in bulk.
// Eviction is by insertion age, not recency of use. Safe for
// concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[cacheKey][]domain.ScoredResult
	order    []cacheKey

	hits   uint64
	misses uint64
}

// NewCache creates a cache bounded to capacity entries.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[cacheKey][]domain.ScoredResult),
	}
}

// Get returns the cached results for a key, if present.
func (c *Cache) Get(key cacheKey) ([]domain.ScoredResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	results, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return results, ok
}

// Put stores results for a key. Re-inserting an existing key replaces
// its value but keeps its original insertion position.
func (c *Cache) Put(key cacheKey, results []domain.ScoredResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = results

	if len(c.entries) > c.capacity {
		c.evictOldestHalf()
	}
}

// evictOldestHalf drops the oldest-inserted half of the entries.
// Caller must hold the lock.
func (c *Cache) evictOldestHalf() {
	cut := len(c.order) / 2
	for _, key := range c.order[:cut] {
		delete(c.entries, key)
	}
	c.order = append([]cacheKey(nil), c.order[cut:]...)
}

// Purge drops every entry. Called when the indexes are rebuilt so
// cached results never reference a stale index.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey][]domain.ScoredResult)
	c.order = nil
}

// Len returns the current entry count.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Hits returns the cumulative hit count.
func (c *Cache) Hits() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}

// Misses returns the cumulative miss count.
func (c *Cache) Misses() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}
