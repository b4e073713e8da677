package stats

import (
	"testing"
	"time"
)

func TestQueryCacheExpiry(t *testing.T) {
	clock := newFakeClock()
	cache := newQueryCache(time.Hour, clock.Now)

	cache.set("k", Result{Success: true})
	if _, ok := cache.get("k"); !ok {
		t.Fatal("expected a hit within the TTL")
	}

	clock.Advance(2 * time.Hour)
	if _, ok := cache.get("k"); ok {
		t.Fatal("expected the entry to expire")
	}
	if cache.size() != 0 {
		t.Errorf("expected the expired entry to be dropped, size = %d", cache.size())
	}
}

func TestQueryCacheDefaults(t *testing.T) {
	cache := newQueryCache(0, nil)
	if cache.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", cache.ttl, DefaultTTL)
	}

	cache.set("k", Result{Success: true})
	if _, ok := cache.get("k"); !ok {
		t.Error("expected a hit with default clock and TTL")
	}
}
