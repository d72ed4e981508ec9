package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got string
	if err := mc.Get(ctx, "k", &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "v" {
		t.Errorf("got %q, want v", got)
	}

	ok, err := mc.Exists(ctx, "k")
	if err != nil || !ok {
		t.Errorf("Exists = %v, %v; want true, nil", ok, err)
	}

	if err := mc.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mc.Get(ctx, "k", &got); err != ErrCacheMiss {
		t.Errorf("after delete: err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	// Non-positive expiration falls back to the long default, entry lives.
	if err := mc.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var kept string
	if err := mc.Get(ctx, "k", &kept); err != nil {
		t.Errorf("default-expiry entry should be readable: %v", err)
	}

	if err := mc.Set(ctx, "short", "v", time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	var got string
	if err := mc.Get(ctx, "short", &got); err != ErrCacheMiss {
		t.Errorf("expired entry: err = %v, want ErrCacheMiss", err)
	}
}
