// Package repo implements the local durable persistence layer. This file
// provides PinStore, an ordered set of pinned ids per category stored as a
// JSON array under a fixed key.
//
// Semantics:
//   - All returns ids in insertion order.
//   - Add is a no-op when the id is already pinned.
//   - Remove is a no-op when the id is not pinned.
//   - Clear removes the stored list entirely.
//
// Read-modify-write cycles are serialized per store with a mutex, so
// concurrent Add/Remove calls within one process never lose a write.
// Storage failures are logged and the last known list is returned together
// with the error.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/tbourn/parkstats-backend/internal/sysutil"
)

// Category names one independent pinned-id list.
type Category string

const (
	CategoryAttractions  Category = "attractions"
	CategoryDestinations Category = "destinations"
	CategoryShows        Category = "shows"
)

// Categories lists every supported category.
var Categories = []Category{CategoryAttractions, CategoryDestinations, CategoryShows}

// ErrUnknownCategory is returned by ParseCategory for unsupported names.
var ErrUnknownCategory = errors.New("unknown pin category")

// ErrEmptyID is returned when pinning or unpinning a blank id.
var ErrEmptyID = errors.New("id must not be empty")

// ParseCategory maps a request value to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// StorageKey is the fixed key the category's list lives under.
func (c Category) StorageKey() string { return "pinned_" + string(c) }

// PinStore persists the pinned ids of one category.
type PinStore struct {
	db  *gorm.DB
	cat Category

	mu   sync.Mutex
	last []string
}

// NewPinStore returns the store for cat.
func NewPinStore(db *gorm.DB, cat Category) *PinStore {
	return &PinStore{db: db, cat: cat, last: []string{}}
}

// Category returns the store's category.
func (s *PinStore) Category() Category { return s.cat }

// All returns the pinned ids in insertion order.
func (s *PinStore) All(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, err := s.readLocked(ctx)
	if err != nil {
		return s.lastLocked(), err
	}
	return clone(ids), nil
}

// Contains reports whether id is pinned.
func (s *PinStore) Contains(ctx context.Context, id string) (bool, error) {
	ids, err := s.All(ctx)
	return indexOf(ids, id) >= 0, err
}

// Add pins id at the end of the list unless it is already present.
func (s *PinStore) Add(ctx context.Context, id string) ([]string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.readLocked(ctx)
	if err != nil {
		return s.lastLocked(), err
	}
	if indexOf(ids, id) >= 0 {
		return clone(ids), nil
	}
	return s.writeLocked(ctx, append(ids, id))
}

// Remove unpins id. Removing an id that is not pinned changes nothing.
func (s *PinStore) Remove(ctx context.Context, id string) ([]string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.readLocked(ctx)
	if err != nil {
		return s.lastLocked(), err
	}
	i := indexOf(ids, id)
	if i < 0 {
		return clone(ids), nil
	}
	return s.writeLocked(ctx, append(ids[:i:i], ids[i+1:]...))
}

// Clear removes every pinned id of the category.
func (s *PinStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := DeleteValue(ctx, s.db, s.cat.StorageKey()); err != nil {
		s.logFailure(ctx, err, "clear")
		return err
	}
	s.last = []string{}
	return nil
}

// readLocked loads and decodes the stored list. A corrupt value is logged
// and treated as empty; duplicates are dropped keeping the first occurrence.
func (s *PinStore) readLocked(ctx context.Context) ([]string, error) {
	raw, ok, err := GetValue(ctx, s.db, s.cat.StorageKey())
	if err != nil {
		s.logFailure(ctx, err, "read")
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		s.last = []string{}
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		sysutil.Logger(ctx).Warn().
			Err(err).
			Str("category", string(s.cat)).
			Msg("pinned ids value is corrupt; treating as empty")
		ids = nil
	}
	ids = dedupe(ids)
	s.last = clone(ids)
	return ids, nil
}

func (s *PinStore) writeLocked(ctx context.Context, ids []string) ([]string, error) {
	b, err := json.Marshal(ids)
	if err != nil {
		return s.lastLocked(), err
	}
	if err := SetValue(ctx, s.db, s.cat.StorageKey(), string(b)); err != nil {
		s.logFailure(ctx, err, "write")
		return s.lastLocked(), err
	}
	s.last = clone(ids)
	return clone(ids), nil
}

func (s *PinStore) lastLocked() []string { return clone(s.last) }

func (s *PinStore) logFailure(ctx context.Context, err error, op string) {
	sysutil.Logger(ctx).Error().
		Err(err).
		Str("category", string(s.cat)).
		Str("op", op).
		Msg("pinned ids storage failure")
}

// PinStores groups the three independent category stores.
type PinStores struct {
	stores map[Category]*PinStore
}

// NewPinStores builds one store per category on db.
func NewPinStores(db *gorm.DB) *PinStores {
	m := make(map[Category]*PinStore, len(Categories))
	for _, c := range Categories {
		m[c] = NewPinStore(db, c)
	}
	return &PinStores{stores: m}
}

// For returns the store of cat, or nil for an unknown category.
func (p *PinStores) For(cat Category) *PinStore { return p.stores[cat] }

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func clone(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
