// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestCacheBasicOperations(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	_, exists = c.Get("key2")
	if exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	c := New(100 * time.Millisecond)

	c.Set("key1", "value1")

	_, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	time.Sleep(150 * time.Millisecond)

	_, exists = c.Get("key1")
	if exists {
		t.Error("Expected key1 to be expired")
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Invalidate("key1")

	_, exists := c.Get("key1")
	if exists {
		t.Error("Expected key1 to be invalidated")
	}
}

func TestCacheClear(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	c.Clear()

	for _, key := range []string{"key1", "key2", "key3"} {
		_, exists := c.Get(key)
		if exists {
			t.Errorf("Expected %s to be cleared", key)
		}
	}
}

func TestCacheStats(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Get("key1") // hit
	c.Get("key2") // miss
	c.Get("key1") // hit

	stats := c.Stats()

	if stats.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}

	hitRate := c.HitRate()
	expectedHitRate := 66.66666666666667 // 2/3 * 100
	if hitRate < expectedHitRate-0.01 || hitRate > expectedHitRate+0.01 {
		t.Errorf("Expected hit rate around %.2f%%, got %.2f%%", expectedHitRate, hitRate)
	}
}

func TestCacheAccessCount(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	if got := c.AccessCount("key1"); got != 0 {
		t.Errorf("expected fresh entry to have 0 accesses, got %d", got)
	}

	c.Get("key1")
	c.Get("key1")

	if got := c.AccessCount("key1"); got != 2 {
		t.Errorf("expected 2 accesses, got %d", got)
	}

	if got := c.AccessCount("missing"); got != 0 {
		t.Errorf("expected 0 accesses for missing key, got %d", got)
	}
}

func TestCacheGetWithTTLOverridesDefault(t *testing.T) {
	c := New(1 * time.Hour)

	c.Set("key1", "value1")

	// A short per-call TTL should evict even though the cache default is long.
	time.Sleep(20 * time.Millisecond)
	if _, exists := c.GetWithTTL("key1", 10*time.Millisecond); exists {
		t.Error("expected entry to be stale under the shorter per-call TTL")
	}

	// Once evicted, even the generous default no longer finds it.
	if _, exists := c.Get("key1"); exists {
		t.Error("expected entry removed by the stale GetWithTTL call")
	}
}

func TestCacheGetWithTTLZeroFallsBackToDefault(t *testing.T) {
	c := New(50 * time.Millisecond)
	c.Set("key1", "value1")

	if _, exists := c.GetWithTTL("key1", 0); !exists {
		t.Error("expected zero ttl to fall back to the cache default and find a fresh entry")
	}
}

func TestCacheConcurrency(t *testing.T) {
	c := New(1 * time.Minute)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			for j := 0; j < 100; j++ {
				key := "key"
				c.Set(key, id)
				c.Get(key)
				if j%10 == 0 {
					c.Invalidate(key)
				}
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	stats := c.Stats()
	if stats.Hits == 0 && stats.Misses == 0 {
		t.Error("Expected some cache activity from concurrent operations")
	}
}

func BenchmarkCacheSet(b *testing.B) {
	c := New(1 * time.Minute)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set("key", "value")
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New(1 * time.Minute)
	c.Set("key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}

func TestCacheManualCleanup(t *testing.T) {
	c := New(50 * time.Millisecond)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist")
	}

	time.Sleep(100 * time.Millisecond)

	c.cleanup()

	stats := c.Stats()
	if stats.TotalKeys != 0 {
		t.Errorf("Expected 0 total keys after cleanup, got %d", stats.TotalKeys)
	}

	if stats.Evictions != 3 {
		t.Errorf("Expected 3 evictions, got %d", stats.Evictions)
	}

	if stats.LastCleanup.IsZero() {
		t.Error("Expected LastCleanup to be set")
	}
}

func TestCacheZeroTTL(t *testing.T) {
	c := New(0)

	c.Set("key1", "value1")

	_, exists := c.Get("key1")
	if exists {
		t.Error("Expected key with zero TTL to be expired immediately")
	}
}

func TestCacheStatsCopy(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Get("key1")

	stats1 := c.Stats()
	originalHits := stats1.Hits

	c.Get("key1")
	c.Get("key2")

	if stats1.Hits != originalHits {
		t.Error("Stats should return a copy, not a reference")
	}

	stats2 := c.Stats()
	if stats2.Hits == originalHits {
		t.Error("Expected new stats to reflect updated hits")
	}
}

func TestCacheHitRateZeroOperations(t *testing.T) {
	c := New(1 * time.Minute)

	if hitRate := c.HitRate(); hitRate != 0.0 {
		t.Errorf("Expected 0%% hit rate with no operations, got %.2f%%", hitRate)
	}
}

func TestCacheEvictionCounterOnExpiration(t *testing.T) {
	c := New(50 * time.Millisecond)

	c.Set("key1", "value1")
	initialStats := c.Stats()

	time.Sleep(100 * time.Millisecond)
	c.Get("key1")

	stats := c.Stats()
	if stats.Evictions <= initialStats.Evictions {
		t.Error("Expected evictions to increase when accessing expired key")
	}
}

func TestCacheTotalKeysCounter(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	if stats := c.Stats(); stats.TotalKeys != 1 {
		t.Errorf("Expected 1 total key, got %d", stats.TotalKeys)
	}

	c.Set("key2", "value2")
	if stats := c.Stats(); stats.TotalKeys != 2 {
		t.Errorf("Expected 2 total keys, got %d", stats.TotalKeys)
	}

	// Overwriting an existing key should not increase the count.
	c.Set("key1", "new-value1")
	if stats := c.Stats(); stats.TotalKeys != 2 {
		t.Errorf("Expected 2 total keys after overwrite, got %d", stats.TotalKeys)
	}
}

func TestCacheLargeNumberOfEntries(t *testing.T) {
	c := New(1 * time.Minute)

	numEntries := 10000
	for i := 0; i < numEntries; i++ {
		c.Set(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
	}

	stats := c.Stats()
	if stats.TotalKeys != int64(numEntries) {
		t.Errorf("Expected %d total keys, got %d", numEntries, stats.TotalKeys)
	}

	for i := 0; i < 100; i++ {
		idx := i * 100
		key := fmt.Sprintf("key-%d", idx)
		expectedValue := fmt.Sprintf("value-%d", idx)

		value, exists := c.Get(key)
		if !exists {
			t.Errorf("Expected key %s to exist", key)
		}
		if value != expectedValue {
			t.Errorf("Expected value %s, got %v", expectedValue, value)
		}
	}
}

func TestCacheEntryOverwriteResetsInsertedAt(t *testing.T) {
	c := New(200 * time.Millisecond)

	c.Set("key1", "value1")
	time.Sleep(50 * time.Millisecond)
	c.Set("key1", "value2")

	time.Sleep(100 * time.Millisecond)

	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected overwritten key to have reset its insertion time")
	}
	if value != "value2" {
		t.Errorf("Expected value2, got %v", value)
	}
}

func BenchmarkCacheCleanup(b *testing.B) {
	c := New(1 * time.Millisecond)

	for i := 0; i < 1000; i++ {
		c.Set(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
	}

	time.Sleep(10 * time.Millisecond)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.cleanup()
	}
}
