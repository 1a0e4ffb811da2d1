package repo

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"attractions", "Destinations", " shows "} {
		if _, err := ParseCategory(in); err != nil {
			t.Fatalf("ParseCategory(%q): %v", in, err)
		}
	}
	if _, err := ParseCategory("rides"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if got := CategoryShows.StorageKey(); got != "pinned_shows" {
		t.Fatalf("StorageKey = %q", got)
	}
}

func TestPinStore_AddIsIdempotentAndOrdered(t *testing.T) {
	s := NewPinStore(newLocalDB(t), CategoryAttractions)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "a", "c"} {
		if _, err := s.Add(ctx, id); err != nil {
			t.Fatalf("Add(%q): %v", id, err)
		}
	}
	got, err := s.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("All = %v, want %v", got, want)
	}

	ok, err := s.Contains(ctx, "b")
	if err != nil || !ok {
		t.Fatalf("Contains(b) = %v, %v", ok, err)
	}
}

func TestPinStore_RemoveAndClear(t *testing.T) {
	s := NewPinStore(newLocalDB(t), CategoryShows)
	ctx := context.Background()
	_, _ = s.Add(ctx, "x")
	_, _ = s.Add(ctx, "y")

	got, err := s.Remove(ctx, "missing")
	if err != nil || !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("Remove(missing) = %v, %v", got, err)
	}
	got, err = s.Remove(ctx, "x")
	if err != nil || !reflect.DeepEqual(got, []string{"y"}) {
		t.Fatalf("Remove(x) = %v, %v", got, err)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err = s.All(ctx)
	if err != nil || len(got) != 0 || got == nil {
		t.Fatalf("after Clear All = %#v, %v; want empty non-nil", got, err)
	}
}

func TestPinStore_EmptyID(t *testing.T) {
	s := NewPinStore(newLocalDB(t), CategoryShows)
	if _, err := s.Add(context.Background(), "  "); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("Add blank: %v", err)
	}
	if _, err := s.Remove(context.Background(), ""); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("Remove blank: %v", err)
	}
}

func TestPinStore_CategoriesAreIndependent(t *testing.T) {
	stores := NewPinStores(newLocalDB(t))
	ctx := context.Background()
	_, _ = stores.For(CategoryAttractions).Add(ctx, "ride-1")
	_, _ = stores.For(CategoryDestinations).Add(ctx, "dest-1")

	got, _ := stores.For(CategoryShows).All(ctx)
	if len(got) != 0 {
		t.Fatalf("shows should be empty, got %v", got)
	}
	got, _ = stores.For(CategoryDestinations).All(ctx)
	if !reflect.DeepEqual(got, []string{"dest-1"}) {
		t.Fatalf("destinations = %v", got)
	}
	if stores.For(Category("nope")) != nil {
		t.Fatalf("unknown category should have no store")
	}
}

func TestPinStore_CorruptValueTreatedAsEmpty(t *testing.T) {
	db := newLocalDB(t)
	ctx := context.Background()
	if err := SetValue(ctx, db, CategoryAttractions.StorageKey(), "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewPinStore(db, CategoryAttractions)
	got, err := s.All(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("All = %v, %v; want empty", got, err)
	}
	got, err = s.Add(ctx, "a")
	if err != nil || !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("Add after corrupt = %v, %v", got, err)
	}
}

func TestPinStore_StoredDuplicatesCollapse(t *testing.T) {
	db := newLocalDB(t)
	ctx := context.Background()
	_ = SetValue(ctx, db, CategoryShows.StorageKey(), `["a","b","a"]`)
	got, _ := NewPinStore(db, CategoryShows).All(ctx)
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("All = %v", got)
	}
}

func TestPinStore_ConcurrentAddsKeepEveryID(t *testing.T) {
	s := NewPinStore(newLocalDB(t), CategoryAttractions)
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := s.Add(ctx, fmt.Sprintf("id-%02d", i)); err != nil {
				t.Errorf("Add: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := s.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != n {
		t.Fatalf("expected %d ids, got %d: %v", n, len(got), got)
	}
}

func TestPinStore_StorageFailureReturnsLastKnown(t *testing.T) {
	db := newLocalDB(t)
	ctx := context.Background()
	s := NewPinStore(db, CategoryAttractions)
	if _, err := s.Add(ctx, "a"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := db.Migrator().DropTable("kv_store"); err != nil {
		t.Fatalf("drop: %v", err)
	}
	got, err := s.Add(ctx, "b")
	if err == nil {
		t.Fatalf("expected storage error")
	}
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected last known [a], got %v", got)
	}
}
