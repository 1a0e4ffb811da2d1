package services

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tbourn/parkstats-backend/internal/domain"
	"github.com/tbourn/parkstats-backend/internal/repo"
	"github.com/tbourn/parkstats-backend/internal/store"
)

func newPinService(t *testing.T, fs *fakeStore) *PinService {
	t.Helper()
	db, err := repo.OpenSQLite(filepath.Join(t.TempDir(), "local.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewPinService(repo.NewPinStores(db), newTestService(t, fs, &fakeParkAPI{}, &fakeGeo{}))
}

func TestPinService_PinUnpinClear(t *testing.T) {
	svc := newPinService(t, newFakeStore())
	ctx := context.Background()

	if _, err := svc.Pin(ctx, "attractions", "r1"); err != nil {
		t.Fatalf("Pin: %v", err)
	}
	ids, err := svc.Pin(ctx, "attractions", "r1")
	if err != nil || !reflect.DeepEqual(ids, []string{"r1"}) {
		t.Fatalf("second Pin = %v, %v", ids, err)
	}
	if ids, _ = svc.Unpin(ctx, "attractions", "r1"); len(ids) != 0 {
		t.Fatalf("Unpin = %v", ids)
	}
	_, _ = svc.Pin(ctx, "shows", "s1")
	if err := svc.Clear(ctx, "shows"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if ids, _ = svc.List(ctx, "shows"); len(ids) != 0 {
		t.Fatalf("List after clear = %v", ids)
	}
}

func TestPinService_InvalidCategory(t *testing.T) {
	svc := newPinService(t, newFakeStore())
	if _, err := svc.List(context.Background(), "rides"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if _, err := svc.Pin(context.Background(), "rides", "x"); !errors.Is(err, repo.ErrUnknownCategory) {
		t.Fatalf("expected wrapped ErrUnknownCategory, got %v", err)
	}
}

func TestPinService_PinnedDestinationsKeepPinOrder(t *testing.T) {
	fs := newFakeStore()
	fs.destinations = []domain.Destination{
		{ID: "a", Name: "Alpha"},
		{ID: "b", Name: "Bravo"},
		{ID: "c", Name: "Charlie"},
	}
	svc := newPinService(t, fs)
	ctx := context.Background()

	if r := svc.PinnedDestinations(ctx); r.Status != store.StatusEmpty {
		t.Fatalf("nothing pinned should be empty, got %+v", r)
	}

	for _, id := range []string{"c", "gone", "a"} {
		if _, err := svc.Pin(ctx, "destinations", id); err != nil {
			t.Fatalf("Pin: %v", err)
		}
	}
	r := svc.PinnedDestinations(ctx)
	if !r.OK() {
		t.Fatalf("PinnedDestinations = %+v", r)
	}
	if got := names(r.Data); !reflect.DeepEqual(got, []string{"Charlie", "Alpha"}) {
		t.Fatalf("order = %v", got)
	}
}
