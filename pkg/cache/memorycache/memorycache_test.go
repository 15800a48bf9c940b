package memorycache

import (
	"context"
	"testing"
	"time"
)

func TestCache_SetAndGet(t *testing.T) {
	cache, err := New(&Config{
		MaxSizeBytes:  1024 * 1024, // 1MB
		DefaultTTL:    time.Minute,
		EnableMetrics: true,
	})
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	ctx := context.Background()

	if err := cache.Set(ctx, "key1", "value1", time.Minute); err != nil {
		t.Fatalf("failed to set value: %v", err)
	}

	value, found := cache.Get(ctx, "key1")
	if !found {
		t.Error("expected to find key1")
	}
	if value != "value1" {
		t.Errorf("expected value1, got %v", value)
	}

	if _, found := cache.Get(ctx, "nonexistent"); found {
		t.Error("expected not to find nonexistent key")
	}
}

func TestCache_TTLExpiration(t *testing.T) {
	cache, err := New(&Config{
		MaxSizeBytes:  1024 * 1024,
		DefaultTTL:    time.Minute,
		EnableMetrics: true,
	})
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	ctx := context.Background()

	if err := cache.Set(ctx, "key1", "value1", 50*time.Millisecond); err != nil {
		t.Fatalf("failed to set value: %v", err)
	}

	if _, found := cache.Get(ctx, "key1"); !found {
		t.Error("expected to find key1 before expiration")
	}

	time.Sleep(100 * time.Millisecond)

	if _, found := cache.Get(ctx, "key1"); found {
		t.Error("expected not to find key1 after expiration")
	}
}

func TestCache_DefaultTTL(t *testing.T) {
	cache, err := New(&Config{
		MaxSizeBytes: 1024,
		DefaultTTL:   time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	ctx := context.Background()

	// Zero TTL falls back to the configured default.
	if err := cache.Set(ctx, "key1", "value1", 0); err != nil {
		t.Fatalf("failed to set value: %v", err)
	}
	if _, found := cache.Get(ctx, "key1"); !found {
		t.Error("expected to find key1 under default TTL")
	}
}

func TestCache_LRUEviction(t *testing.T) {
	// Capacity fits barely more than one entry, so the second insert
	// must evict the first.
	cache, err := New(&Config{
		MaxSizeBytes:  150,
		DefaultTTL:    time.Minute,
		EnableMetrics: true,
	})
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	ctx := context.Background()

	if err := cache.Set(ctx, "key1", "value1", time.Minute); err != nil {
		t.Fatalf("failed to set key1: %v", err)
	}
	if err := cache.Set(ctx, "key2", "value2", time.Minute); err != nil {
		t.Fatalf("failed to set key2: %v", err)
	}

	if _, found := cache.Get(ctx, "key1"); found {
		t.Error("expected key1 to be evicted")
	}
	if _, found := cache.Get(ctx, "key2"); !found {
		t.Error("expected key2 to remain")
	}

	m := cache.Metrics()
	if m.KeysEvicted == 0 {
		t.Error("expected at least one eviction to be recorded")
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	cache, err := New(&Config{
		MaxSizeBytes: 1024 * 1024,
		DefaultTTL:   time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	ctx := context.Background()

	cache.Set(ctx, "key1", "value1", time.Minute)
	cache.Set(ctx, "key2", "value2", time.Minute)

	if err := cache.Delete(ctx, "key1"); err != nil {
		t.Fatalf("failed to delete key1: %v", err)
	}
	if _, found := cache.Get(ctx, "key1"); found {
		t.Error("expected key1 to be deleted")
	}

	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("failed to clear cache: %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d items", cache.Len())
	}
	if cache.Size() != 0 {
		t.Errorf("expected zero size after Clear, got %d", cache.Size())
	}
}

func TestCache_Metrics(t *testing.T) {
	cache, err := New(&Config{
		MaxSizeBytes:  1024 * 1024,
		DefaultTTL:    time.Minute,
		EnableMetrics: true,
	})
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	ctx := context.Background()

	cache.Set(ctx, "key1", "value1", time.Minute)
	cache.Get(ctx, "key1")
	cache.Get(ctx, "missing")

	m := cache.Metrics()
	if m.Hits != 1 {
		t.Errorf("hits = %d, want 1", m.Hits)
	}
	if m.Misses != 1 {
		t.Errorf("misses = %d, want 1", m.Misses)
	}
	if m.KeysAdded != 1 {
		t.Errorf("keysAdded = %d, want 1", m.KeysAdded)
	}
	if got := m.HitRate(); got != 0.5 {
		t.Errorf("hit rate = %v, want 0.5", got)
	}
}
