package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"localrank-app-api/core/interfaces"
)

func TestSetAndGet(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %s, want value", got)
	}
}

func TestGet_MissingKey(t *testing.T) {
	cache := NewMemoryCache(time.Hour)

	_, err := cache.Get(context.Background(), "absent")

	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get should return ErrCacheMiss, got %v", err)
	}
}

func TestGet_ExpiredKey(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, err := cache.Get(ctx, "key")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("expired key should return ErrCacheMiss, got %v", err)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value"), time.Hour)

	first, _ := cache.Get(ctx, "key")
	first[0] = 'X'

	second, _ := cache.Get(ctx, "key")
	if string(second) != "value" {
		t.Error("mutating a returned value must not affect the stored entry")
	}
}

func TestSet_CopiesInput(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	ctx := context.Background()

	value := []byte("value")
	_ = cache.Set(ctx, "key", value, time.Hour)
	value[0] = 'X'

	got, _ := cache.Get(ctx, "key")
	if string(got) != "value" {
		t.Error("mutating the input after Set must not affect the stored entry")
	}
}

func TestDelete(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value"), time.Hour)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	_, err := cache.Get(ctx, "key")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Error("deleted key should be a cache miss")
	}
}

func TestDelete_MissingKey(t *testing.T) {
	cache := NewMemoryCache(time.Hour)

	if err := cache.Delete(context.Background(), "absent"); err != nil {
		t.Errorf("Delete of a missing key should be nil, got %v", err)
	}
}

func TestGet_CancelledContext(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should fail for a cancelled context")
	}
}
