package catalog_test

import (
	"context"
	"testing"

	"draftd/internal/catalog"
	"draftd/internal/testsupport"
)

func TestOpenSeedsCatalogs(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	count, err := store.CountEntries(ctx)
	if err != nil {
		t.Fatalf("CountEntries failed: %v", err)
	}
	if count == 0 {
		t.Fatal("expected seeded catalog entries")
	}

	for _, kind := range catalog.Kinds() {
		entries, err := store.ListEntries(ctx, kind)
		if err != nil {
			t.Fatalf("ListEntries(%s) failed: %v", kind, err)
		}
		if len(entries) == 0 {
			t.Errorf("catalog %s is empty", kind)
		}
		for _, entry := range entries {
			if entry.Kind != kind || entry.Name == "" || entry.ResourceID == "" {
				t.Errorf("malformed entry in %s: %+v", kind, entry)
			}
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	first, err := store.CountEntries(ctx)
	if err != nil {
		t.Fatalf("CountEntries failed: %v", err)
	}
	store.Close()

	reopened := testsupport.MustOpenStore(t, cfg)
	second, err := reopened.CountEntries(ctx)
	if err != nil {
		t.Fatalf("CountEntries after reopen failed: %v", err)
	}
	if first != second {
		t.Fatalf("reopen reseeded: %d != %d", first, second)
	}
}

func TestListEntriesStableOrder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	first, err := store.ListEntries(ctx, catalog.KindTransition)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	second, err := store.ListEntries(ctx, catalog.KindTransition)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("order not stable: %d vs %d entries", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order not stable at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
