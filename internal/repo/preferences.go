// Package repo implements the local durable persistence layer. This file
// provides PreferenceStore, the process-wide user preferences document.
//
// Mutations update the in-memory copy synchronously; persistence happens on
// a single background writer so the caller never blocks on disk. The most
// recent value always wins when several writes queue up.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/tbourn/parkstats-backend/internal/sysutil"
)

// PreferencesKey is the fixed key of the preferences document.
const PreferencesKey = "user_preferences"

// SortOrder selects how destination lists are ordered.
type SortOrder string

const (
	SortAlphabetical        SortOrder = "alphabetical"
	SortReverseAlphabetical SortOrder = "reverse_alphabetical"
	SortCountry             SortOrder = "country"
)

// DefaultSortOrder is used when nothing valid is stored.
const DefaultSortOrder = SortAlphabetical

var (
	ErrUnknownSortOrder = errors.New("unknown sort order")
	ErrStoreClosed      = errors.New("preference store closed")
)

// ParseSortOrder validates s.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case SortAlphabetical, SortReverseAlphabetical, SortCountry:
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortOrder, s)
}

// Preferences is the persisted preferences document.
type Preferences struct {
	DestinationSort SortOrder `json:"destinationSortOrder"`
}

// DefaultPreferences returns the document used before anything is stored.
func DefaultPreferences() Preferences {
	return Preferences{DestinationSort: DefaultSortOrder}
}

// PreferenceStore holds the current preferences in memory and persists
// changes asynchronously.
type PreferenceStore struct {
	db *gorm.DB

	mu      sync.RWMutex
	current Preferences
	closed  bool

	pending chan struct{}
	flushed chan chan error
	done    chan struct{}
	wg      sync.WaitGroup
}

// LoadPreferences reads the stored document and starts the writer. Missing,
// corrupt or unreadable values fall back to defaults.
func LoadPreferences(ctx context.Context, db *gorm.DB) *PreferenceStore {
	s := &PreferenceStore{
		db:      db,
		current: DefaultPreferences(),
		pending: make(chan struct{}, 1),
		flushed: make(chan chan error),
		done:    make(chan struct{}),
	}

	raw, ok, err := GetValue(ctx, db, PreferencesKey)
	switch {
	case err != nil:
		sysutil.Logger(ctx).Warn().Err(err).Msg("load preferences; using defaults")
	case ok:
		var p Preferences
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			sysutil.Logger(ctx).Warn().Err(err).Msg("preferences value is corrupt; using defaults")
		} else if o, err := ParseSortOrder(string(p.DestinationSort)); err == nil {
			s.current.DestinationSort = o
		}
	}

	s.wg.Add(1)
	go s.writer()
	return s
}

// Get returns the current preferences.
func (s *PreferenceStore) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetDestinationSort updates the destination sort order. The new value is
// visible to Get immediately; persistence completes in the background.
func (s *PreferenceStore) SetDestinationSort(o SortOrder) (Preferences, error) {
	if _, err := ParseSortOrder(string(o)); err != nil {
		return s.Get(), err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return s.Get(), ErrStoreClosed
	}
	s.current.DestinationSort = o
	p := s.current
	s.mu.Unlock()

	select {
	case s.pending <- struct{}{}:
	default:
	}
	return p, nil
}

// Flush blocks until every change made before the call is persisted.
func (s *PreferenceStore) Flush(ctx context.Context) error {
	reply := make(chan error, 1)
	select {
	case s.flushed <- reply:
	case <-s.done:
		return ErrStoreClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close persists any pending change and stops the writer.
func (s *PreferenceStore) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	close(s.done)
	s.wg.Wait()
}

func (s *PreferenceStore) writer() {
	defer s.wg.Done()
	for {
		select {
		case <-s.pending:
			_ = s.persist()
		case reply := <-s.flushed:
			var err error
			select {
			case <-s.pending:
				err = s.persist()
			default:
			}
			reply <- err
		case <-s.done:
			select {
			case <-s.pending:
				_ = s.persist()
			default:
			}
			return
		}
	}
}

func (s *PreferenceStore) persist() error {
	p := s.Get()
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := SetValue(ctx, s.db, PreferencesKey, string(b)); err != nil {
		sysutil.Logger(ctx).Error().Err(err).Msg("persist preferences")
		return err
	}
	return nil
}
