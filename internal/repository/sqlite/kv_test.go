package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rehmoapp/rehmo/internal/domain"
)

func TestKVStore_SetGet(t *testing.T) {
	db := newTestDB(t)
	kv := db.KV()
	ctx := context.Background()

	if err := kv.Set(ctx, "favorites/1", `["r1","r2"]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := kv.Get(ctx, "favorites/1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != `["r1","r2"]` {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestKVStore_SetOverwrites(t *testing.T) {
	db := newTestDB(t)
	kv := db.KV()
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "old"); err != nil {
		t.Fatalf("first Set: %v", err)
	}
	if err := kv.Set(ctx, "k", "new"); err != nil {
		t.Fatalf("second Set: %v", err)
	}

	got, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "new" {
		t.Fatalf("expected overwritten value, got %q", got)
	}
}

func TestKVStore_GetMissing(t *testing.T) {
	db := newTestDB(t)

	_, err := db.KV().Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
