package testsupport

import (
	"context"
	"testing"

	"cueplan/internal/config"
	"cueplan/internal/plan"
	"cueplan/internal/planstore"
)

// MustOpenStore opens a planstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *planstore.Store {
	t.Helper()

	store, err := planstore.Open(cfg)
	if err != nil {
		t.Fatalf("planstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SavePlan persists a plan for tests using the provided store.
func SavePlan(t testing.TB, store *planstore.Store, title string, p *plan.Plan) {
	t.Helper()

	if err := store.Save(context.Background(), title, p); err != nil {
		t.Fatalf("store.Save: %v", err)
	}
}
