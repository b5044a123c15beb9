package cache

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestTTLCache(t *testing.T) {
	logger := zap.NewNop()
	cache := NewTTLCache(100*time.Millisecond, logger)

	// Test initial cache miss
	_, ok := cache.Get("pods")
	if ok {
		t.Error("Expected cache miss on empty cache")
	}

	// Test cache set
	cache.Set("pods", []string{"pod-1", "pod-2"})

	// Test cache hit
	cached, ok := cache.Get("pods")
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if len(cached) != 2 || cached[0] != "pod-1" {
		t.Errorf("Cached data mismatch: %v", cached)
	}

	// Other keys are independent
	if _, ok := cache.Get("contexts"); ok {
		t.Error("Expected cache miss for unset key")
	}

	// Test cache expiration
	time.Sleep(150 * time.Millisecond)
	_, ok = cache.Get("pods")
	if ok {
		t.Error("Expected cache miss after expiration")
	}
}

func TestTTLCacheReturnsCopies(t *testing.T) {
	cache := NewTTLCache(10*time.Second, zap.NewNop())

	stored := []string{"a", "b"}
	cache.Set("k", stored)
	stored[0] = "changed"

	got, _ := cache.Get("k")
	if got[0] != "a" {
		t.Errorf("Expected stored copy to be unaffected, got %v", got)
	}

	got[1] = "changed"
	again, _ := cache.Get("k")
	if again[1] != "b" {
		t.Errorf("Expected returned copy to be independent, got %v", again)
	}
}

func TestTTLCacheInvalidate(t *testing.T) {
	logger := zap.NewNop()
	cache := NewTTLCache(10*time.Second, logger)

	cache.Set("status", []string{"ok"})

	// Verify cache hit
	_, ok := cache.Get("status")
	if !ok {
		t.Error("Expected cache hit")
	}

	cache.Invalidate()

	// Verify cache miss
	_, ok = cache.Get("status")
	if ok {
		t.Error("Expected cache miss after invalidation")
	}
}
