package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemorySetGet(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(10))
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k1", "v1", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	var got string
	if err := mc.Get(ctx, "k1", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "v1" {
		t.Fatalf("expected v1, got %q", got)
	}
	if err := mc.Get(ctx, "missing", &got); err != ErrCacheMiss {
		t.Fatalf("expected cache miss, got %v", err)
	}
}

func TestMemoryOverwriteAtCapacityKeepsOthers(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(2))
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k1", "v1", time.Minute); err != nil {
		t.Fatalf("set k1: %v", err)
	}
	if err := mc.Set(ctx, "k2", "v2", time.Minute); err != nil {
		t.Fatalf("set k2: %v", err)
	}
	if err := mc.Set(ctx, "k1", "v1b", time.Minute); err != nil {
		t.Fatalf("overwrite k1: %v", err)
	}

	var got string
	if err := mc.Get(ctx, "k2", &got); err != nil {
		t.Fatalf("overwriting k1 must not evict k2: %v", err)
	}
	if err := mc.Get(ctx, "k1", &got); err != nil || got != "v1b" {
		t.Fatalf("expected updated k1, got %q err %v", got, err)
	}
}

func TestMemoryEvictsLRUWhenFull(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(2))
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k1", "v1", time.Minute); err != nil {
		t.Fatalf("set k1: %v", err)
	}
	time.Sleep(time.Millisecond)
	if err := mc.Set(ctx, "k2", "v2", time.Minute); err != nil {
		t.Fatalf("set k2: %v", err)
	}
	time.Sleep(time.Millisecond)
	if err := mc.Set(ctx, "k3", "v3", time.Minute); err != nil {
		t.Fatalf("set k3: %v", err)
	}

	var got string
	if err := mc.Get(ctx, "k1", &got); err != ErrCacheMiss {
		t.Fatalf("oldest key must be evicted, got %v", err)
	}
	if err := mc.Get(ctx, "k3", &got); err != nil || got != "v3" {
		t.Fatalf("newest key must survive, got %q err %v", got, err)
	}
}
