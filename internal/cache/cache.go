// Package cache implements the stale-while-revalidate query cache that sits
// between the query services and the upstream data sources.
//
// A Cache is an explicitly owned object: build one at start-up, pass it to
// the services that need it, and Close it on shutdown. Entries are keyed by
// a deterministic serialization of the query parameters (see Key).
//
// Read semantics for Fetch:
//   - fresh entry:  returned as is, the fetch function is not called
//   - stale entry:  returned immediately and refreshed once in the background
//   - missing:      fetched synchronously; concurrent callers for the same key
//     share a single upstream call
//
// Errors are never stored, so a failed fetch does not block the next
// identical read. Entries with a RefetchInterval are refreshed by Run while
// they keep being read; once a key goes unread for IdleTimeout its polling
// stops.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tbourn/parkstats-backend/internal/sysutil"
)

// ErrTypeMismatch is returned by Get when a key holds a value of another type.
var ErrTypeMismatch = errors.New("cache: cached value has unexpected type")

// Outcome classifies a read.
type Outcome string

const (
	OutcomeFresh Outcome = "fresh"
	OutcomeStale Outcome = "stale"
	OutcomeMiss  Outcome = "miss"
)

// FetchFunc loads the value for a key from upstream.
type FetchFunc func(ctx context.Context) (any, error)

// Options describe how long a value stays fresh and how often it is polled.
// A zero StaleTime makes every read after the first one stale.
type Options struct {
	StaleTime       time.Duration
	RefetchInterval time.Duration
}

// Config tunes a Cache. Zero values take the defaults noted per field.
type Config struct {
	// MaxEntries caps the number of entries; 0 means unbounded. When the cap
	// is exceeded the least recently read entry is evicted.
	MaxEntries int
	// IdleTimeout stops interval refetching for keys not read within it
	// (default 5m).
	IdleTimeout time.Duration
	// Tick is the scheduler period used by Run (default 1s).
	Tick time.Duration
	// RevalidateTimeout bounds background refreshes and shared loads on a
	// miss (default 30s).
	RevalidateTimeout time.Duration
	// Now overrides the clock (tests).
	Now func() time.Time
}

type entry struct {
	value      any
	updatedAt  time.Time
	accessedAt time.Time
	opts       Options
	fetch      FetchFunc
	refreshing bool
}

// Cache is safe for concurrent use.
type Cache struct {
	cfg     Config
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group

	base   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New constructs an empty cache.
func New(cfg Config) *Cache {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 5 * time.Minute
	}
	if cfg.Tick <= 0 {
		cfg.Tick = time.Second
	}
	if cfg.RevalidateTimeout <= 0 {
		cfg.RevalidateTimeout = 30 * time.Second
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	base, cancel := context.WithCancel(context.Background())
	return &Cache{
		cfg:     cfg,
		now:     now,
		entries: make(map[string]*entry),
		base:    base,
		cancel:  cancel,
	}
}

// Key builds a cache key from query parameters. Equal parameters always give
// equal keys; maps are serialized with sorted keys.
func Key(parts ...any) string {
	b, err := json.Marshal(parts)
	if err != nil {
		return fmt.Sprintf("%#v", parts)
	}
	return string(b)
}

// KeyPrefix returns the prefix shared by every Key whose first part is name,
// for use with InvalidatePrefix.
func KeyPrefix(name string) string {
	b, _ := json.Marshal(name)
	return "[" + string(b)
}

// Fetch returns the value for key, loading it with fn when needed.
func (c *Cache) Fetch(ctx context.Context, key string, opts Options, fn FetchFunc) (any, Outcome, error) {
	now := c.now()

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		e.accessedAt = now
		e.opts = opts
		e.fetch = fn
		v := e.value
		fresh := now.Sub(e.updatedAt) < opts.StaleTime
		c.mu.Unlock()

		if fresh {
			cacheRequests.WithLabelValues(string(OutcomeFresh)).Inc()
			return v, OutcomeFresh, nil
		}
		cacheRequests.WithLabelValues(string(OutcomeStale)).Inc()
		c.revalidate(key)
		return v, OutcomeStale, nil
	}
	c.mu.Unlock()

	cacheRequests.WithLabelValues(string(OutcomeMiss)).Inc()
	// The load is shared by every waiter on key, so it must outlive the
	// caller that started it. Each waiter still stops waiting on its own ctx.
	ch := c.group.DoChan(key, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.RevalidateTimeout)
		defer cancel()
		return c.load(lctx, key, opts, fn)
	})
	select {
	case <-ctx.Done():
		return nil, OutcomeMiss, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, OutcomeMiss, r.Err
		}
		return r.Val, OutcomeMiss, nil
	}
}

// Get is the typed form of Fetch.
func Get[T any](ctx context.Context, c *Cache, key string, opts Options, fn func(context.Context) (T, error)) (T, Outcome, error) {
	var zero T
	v, outcome, err := c.Fetch(ctx, key, opts, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, outcome, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, outcome, fmt.Errorf("%w: key %s holds %T", ErrTypeMismatch, key, v)
	}
	return t, outcome, nil
}

// load calls fn and stores the value on success.
func (c *Cache) load(ctx context.Context, key string, opts Options, fn FetchFunc) (any, error) {
	v, err := fn(ctx)
	if err != nil {
		cacheFetchErrors.Inc()
		return nil, err
	}
	c.store(key, v, opts, fn)
	return v, nil
}

func (c *Cache) store(key string, v any, opts Options, fn FetchFunc) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = v
		e.updatedAt = now
		e.opts = opts
		e.fetch = fn
		return
	}
	c.entries[key] = &entry{value: v, updatedAt: now, accessedAt: now, opts: opts, fetch: fn}
	cacheEntries.Inc()
	if c.cfg.MaxEntries > 0 && len(c.entries) > c.cfg.MaxEntries {
		c.evictOldestLocked(key)
	}
}

// evictOldestLocked drops the least recently read entry other than keep.
func (c *Cache) evictOldestLocked(keep string) {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for k, e := range c.entries {
		if k == keep {
			continue
		}
		if !found || e.accessedAt.Before(oldest) {
			oldestKey, oldest, found = k, e.accessedAt, true
		}
	}
	if found {
		delete(c.entries, oldestKey)
		cacheEntries.Dec()
		cacheEvictions.Inc()
	}
}

// revalidate refreshes key in the background unless a refresh is already
// running. The stale value stays in place if the refresh fails.
func (c *Cache) revalidate(key string) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok || e.refreshing || e.fetch == nil || c.base.Err() != nil {
		c.mu.Unlock()
		return
	}
	e.refreshing = true
	fn, opts := e.fetch, e.opts
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(c.base, c.cfg.RevalidateTimeout)
		defer cancel()

		_, err, _ := c.group.Do(key, func() (any, error) {
			return c.load(ctx, key, opts, fn)
		})
		if err != nil {
			sysutil.Logger(ctx).Warn().Err(err).Str("key", key).Msg("background revalidation failed")
		}

		c.mu.Lock()
		if e, ok := c.entries[key]; ok {
			e.refreshing = false
		}
		c.mu.Unlock()
	}()
}

// Run schedules interval refetches until ctx is done.
func (c *Cache) Run(ctx context.Context) {
	t := time.NewTicker(c.cfg.Tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.base.Done():
			return
		case <-t.C:
			c.refetchDue()
		}
	}
}

// refetchDue starts a refresh for every polled entry whose interval elapsed
// and that was read within IdleTimeout.
func (c *Cache) refetchDue() {
	now := c.now()
	var due []string
	c.mu.Lock()
	for k, e := range c.entries {
		if e.opts.RefetchInterval <= 0 || e.refreshing {
			continue
		}
		if now.Sub(e.accessedAt) > c.cfg.IdleTimeout {
			continue
		}
		if now.Sub(e.updatedAt) >= e.opts.RefetchInterval {
			due = append(due, k)
		}
	}
	c.mu.Unlock()

	for _, k := range due {
		c.revalidate(k)
	}
}

// Invalidate removes key so the next read fetches again.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		cacheEntries.Dec()
	}
	c.mu.Unlock()
}

// InvalidatePrefix removes every key starting with prefix.
func (c *Cache) InvalidatePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			n++
		}
	}
	cacheEntries.Sub(float64(n))
	return n
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close stops background work and waits for in-flight refreshes.
func (c *Cache) Close() {
	c.cancel()
	c.wg.Wait()
}
