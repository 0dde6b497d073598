// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package cache

import (
	"sync"
	"time"
)

// entry is a single cached value together with its bookkeeping.
// AccessCount and InsertedAt mirror CacheEntry from the data model: every
// successful Get increments AccessCount; InsertedAt is fixed at Set time
// and never touched again.
type entry struct {
	value       interface{}
	insertedAt  time.Time
	accessCount int64
}

// Cache is a thread-safe, TTL-evicting key/value store. Unlike a
// fixed-expiration cache, each entry only carries its insertion time;
// the TTL applied on read can be overridden per call via GetWithTTL,
// which lets callers ask "is this still fresh enough for me" without
// forcing every consumer to share one expiration policy.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	stats   Stats
}

// Stats tracks cache performance counters.
type Stats struct {
	mu          sync.RWMutex
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	Evictions   int64     `json:"evictions"`
	TotalKeys   int64     `json:"total_keys"`
	LastCleanup time.Time `json:"last_cleanup"`
}

// New creates a cache with the given default TTL. A background goroutine
// sweeps expired entries every 5 minutes so long-idle keys don't linger
// between reads; this is purely a memory-bound, not a correctness
// guarantee — Get always re-checks the deadline itself.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]*entry),
		ttl:     ttl,
		stats:   Stats{LastCleanup: time.Now()},
	}
	go c.cleanupLoop()
	return c
}

// Set stores value under key, using the cache's default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry{value: value, insertedAt: time.Now()}
	c.stats.mu.Lock()
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.mu.Unlock()
}

// Get retrieves key using the cache's default TTL. See GetWithTTL.
func (c *Cache) Get(key string) (interface{}, bool) {
	return c.GetWithTTL(key, c.ttl)
}

// GetWithTTL retrieves key, evicting it if now-insertedAt exceeds ttl. A
// zero ttl falls back to the cache's configured default, so callers that
// don't care about freshness windows can keep calling Get. An entry whose
// age is past ttl is never returned, even if it is still present in the
// map at the moment of the call — it is deleted as part of this access.
func (c *Cache) GetWithTTL(key string, ttl time.Duration) (interface{}, bool) {
	if ttl <= 0 {
		ttl = c.ttl
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.recordMiss()
		return nil, false
	}

	if time.Since(e.insertedAt) > ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.recordMiss()
		c.recordEviction()
		return nil, false
	}

	c.mu.Lock()
	e.accessCount++
	c.mu.Unlock()

	c.recordHit()
	return e.value, true
}

// Invalidate removes key unconditionally. No-op if key is absent.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()

	if existed {
		c.recordEviction()
	}
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	evicted := int64(len(c.entries))
	c.entries = make(map[string]*entry)
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evicted
	c.stats.TotalKeys = 0
	c.stats.mu.Unlock()
}

// Stats returns a point-in-time snapshot of cache counters.
func (c *Cache) Stats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	return Stats{
		Hits:        c.stats.Hits,
		Misses:      c.stats.Misses,
		Evictions:   c.stats.Evictions,
		TotalKeys:   c.stats.TotalKeys,
		LastCleanup: c.stats.LastCleanup,
	}
}

// HitRate returns Hits / (Hits+Misses) as a percentage, or 0 if no
// accesses have been recorded yet.
func (c *Cache) HitRate() float64 {
	s := c.Stats()
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// AccessCount returns how many times key has been read successfully, or
// 0 if the key is absent or already evicted.
func (c *Cache) AccessCount(key string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return 0
	}
	return e.accessCount
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *Cache) cleanup() {
	now := time.Now()
	c.mu.Lock()
	evicted := int64(0)
	for key, e := range c.entries {
		if now.Sub(e.insertedAt) > c.ttl {
			delete(c.entries, key)
			evicted++
		}
	}
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evicted
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.LastCleanup = now
	c.stats.mu.Unlock()
}

func (c *Cache) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
}

func (c *Cache) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
}

func (c *Cache) recordEviction() {
	c.stats.mu.Lock()
	c.stats.Evictions++
	c.stats.mu.Unlock()
}
