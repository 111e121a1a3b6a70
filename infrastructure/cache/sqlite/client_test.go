package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"localrank-app-api/core/interfaces"
)

func testClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestSetAndGet(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := client.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %s, want value", got)
	}
}

func TestGet_MissingKey(t *testing.T) {
	client := testClient(t)

	_, err := client.Get(context.Background(), "absent")

	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get should return ErrCacheMiss, got %v", err)
	}
}

func TestGet_ExpiredKey(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	// Expiry is stored at second granularity; write an already-expired row
	_ = client.Set(ctx, "key", []byte("value"), -time.Minute)

	_, err := client.Get(ctx, "key")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("expired key should return ErrCacheMiss, got %v", err)
	}
}

func TestSet_Overwrites(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	_ = client.Set(ctx, "key", []byte("old"), time.Hour)
	_ = client.Set(ctx, "key", []byte("new"), time.Hour)

	got, _ := client.Get(ctx, "key")
	if string(got) != "new" {
		t.Errorf("Get after overwrite = %s, want new", got)
	}
}

func TestDelete(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	_ = client.Set(ctx, "key", []byte("value"), time.Hour)
	if err := client.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	_, err := client.Get(ctx, "key")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Error("deleted key should be a cache miss")
	}
}

func TestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.db")
	ctx := context.Background()

	first, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	_ = first.Set(ctx, "key", []byte("value"), time.Hour)
	_ = first.Close()

	second, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get after reopen returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get after reopen = %s, want value", got)
	}
}
