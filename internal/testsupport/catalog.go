package testsupport

import (
	"context"
	"testing"

	"draftd/internal/catalog"
	"draftd/internal/config"
	"draftd/internal/logging"
)

// MustOpenStore opens a seeded catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewCatalogService builds a catalog service backed by a temp seeded store.
func NewCatalogService(t testing.TB) *catalog.Service {
	t.Helper()

	cfg := NewConfig(t)
	store := MustOpenStore(t, cfg)
	svc, err := catalog.NewService(context.Background(), store, logging.NewNop())
	if err != nil {
		t.Fatalf("catalog.NewService: %v", err)
	}
	return svc
}
