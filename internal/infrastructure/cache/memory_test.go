package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evaly/backend/internal/domain"
)

type testPayload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	in := testPayload{Name: "Neck Massager", Price: 49.99}
	if err := c.Set(ctx, "product:1", in, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var out testPayload
	if err := c.Get(ctx, "product:1", &out); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if out.Name != in.Name || out.Price != in.Price {
		t.Errorf("Get() = %+v, want %+v", out, in)
	}
}

func TestMemoryCache_MissOnAbsentKey(t *testing.T) {
	c := NewMemoryCache()

	var out testPayload
	err := c.Get(context.Background(), "nope", &out)
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_MissOnExpiredKey(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "blink", testPayload{Name: "gone"}, time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	var out testPayload
	if err := c.Get(ctx, "blink", &out); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("Get() error = %v, want ErrCacheMiss after expiry", err)
	}

	exists, err := c.Exists(ctx, "blink")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true for expired key, want false")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", testPayload{Name: "v"}, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var out testPayload
	if err := c.Get(ctx, "k", &out); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("Get() after Delete error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_SliceRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	in := []testPayload{{Name: "a", Price: 1}, {Name: "b", Price: 2}}
	if err := c.Set(ctx, "list", in, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var out []testPayload
	if err := c.Get(ctx, "list", &out); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(out) != 2 || out[1].Name != "b" {
		t.Errorf("Get() = %+v, want %+v", out, in)
	}
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, key, testPayload{Name: key}, time.Minute); err != nil {
			t.Fatalf("Set(%q) error = %v", key, err)
		}
	}

	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3", c.Size())
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", c.Size())
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	done := make(chan struct{})

	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				_ = c.Set(ctx, "shared", testPayload{Name: "x"}, time.Minute)
				var out testPayload
				_ = c.Get(ctx, "shared", &out)
			}
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
