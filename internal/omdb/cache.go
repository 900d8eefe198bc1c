package omdb

import (
	"sync"
	"time"
)

// cacheEntry stores a cached response with its fetch timestamp.
type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

// responseCache is a bounded fingerprint-to-response cache. Entries
// older than the TTL are treated as absent and evicted on lookup.
// When the cache is full, expired entries are dropped first, then the
// oldest live entry.
type responseCache struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func newResponseCache(ttl time.Duration, maxEntries int) *responseCache {
	return &responseCache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// get returns the cached value for key, if present and unexpired.
func (c *responseCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// put stores value under key, evicting if at capacity.
func (c *responseCache) put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = cacheEntry{value: value, fetchedAt: c.now()}
}

// evictLocked frees one slot: expired entries first, oldest otherwise.
func (c *responseCache) evictLocked() {
	now := c.now()
	var oldestKey string
	var oldestAt time.Time

	for key, entry := range c.entries {
		if now.Sub(entry.fetchedAt) >= c.ttl {
			delete(c.entries, key)
			return
		}
		if oldestKey == "" || entry.fetchedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.fetchedAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// clear discards all entries.
func (c *responseCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// len reports the current entry count.
func (c *responseCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
