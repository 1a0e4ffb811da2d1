// Package handlers provides HTTP handler implementations for the public API.
//
// Handlers are transport-thin: they validate and normalize inputs, call the
// query and pin services, and render the resulting store.Result as an
// Envelope. They never talk to the remote store or upstream APIs directly.
package handlers

import (
	"context"
	"time"

	"github.com/tbourn/parkstats-backend/internal/domain"
	"github.com/tbourn/parkstats-backend/internal/repo"
	"github.com/tbourn/parkstats-backend/internal/services"
	"github.com/tbourn/parkstats-backend/internal/store"
	"github.com/tbourn/parkstats-backend/internal/themeparks"
)

//
// Service contracts (context-aware)
//

// QueryService defines the cached read queries consumed by HTTP handlers.
//
// Implementations must be safe for concurrent use and must honor the
// provided context for cancellation and timeouts. A context marked with
// services.WithRefresh forces a refetch.
type QueryService interface {
	Destinations(ctx context.Context, p store.Page, fields []string, order repo.SortOrder) store.Result[[]domain.Destination]
	DestinationBySlug(ctx context.Context, slug string) store.Result[*domain.Destination]
	Parks(ctx context.Context, destinationID string) store.Result[[]domain.Park]
	ParksByIDs(ctx context.Context, ids []string) store.Result[[]domain.Park]
	MonthlyRideStats(ctx context.Context, rideID string, year, month int) store.Result[*domain.RideStatisticMonthly]
	DailyRideStats(ctx context.Context, rideID string, year, month int) store.Result[[]domain.RideStatisticDaily]
	RideInsights(ctx context.Context, rideID, date string) store.Result[*services.RideInsight]
	Schedule(ctx context.Context, entityID string, year, month int) store.Result[*services.EntitySchedule]
	Entity(ctx context.Context, id string) store.Result[*themeparks.Entity]
	Children(ctx context.Context, id string) store.Result[[]themeparks.Entity]
	Live(ctx context.Context, id string) store.Result[[]services.LiveStatus]
	Country(ctx context.Context, lat, lon float64) store.Result[*services.Country]
}

// PinService manages pinned ids per category.
type PinService interface {
	// List returns the pinned ids of category in pin order.
	List(ctx context.Context, category string) ([]string, error)
	// Pin adds id to category and returns the updated list.
	Pin(ctx context.Context, category, id string) ([]string, error)
	// Unpin removes id from category and returns the updated list.
	Unpin(ctx context.Context, category, id string) ([]string, error)
	// Clear removes every pin of category.
	Clear(ctx context.Context, category string) error
	// PinnedDestinations resolves pinned destination ids to records.
	PinnedDestinations(ctx context.Context) store.Result[[]domain.Destination]
}

// Preferences reads and updates the stored user preferences.
type Preferences interface {
	Get() repo.Preferences
	SetDestinationSort(o repo.SortOrder) (repo.Preferences, error)
}

// LocalStatsFunc reports the number of local records and their latest
// update time.
type LocalStatsFunc func(ctx context.Context) (count int64, updatedAt *time.Time, err error)

//
// Handler wiring
//

// Handlers groups the HTTP endpoints. It depends on abstract service
// interfaces to keep transport concerns separate from data access.
type Handlers struct {
	queries QueryService
	pins    PinService
	prefs   Preferences
	stats   LocalStatsFunc

	// now is replaceable in tests.
	now func() time.Time
}

// New constructs and returns a Handlers instance bound to the given services.
// stats may be nil, in which case /health omits local storage details.
func New(q QueryService, pins PinService, prefs Preferences, stats LocalStatsFunc) *Handlers {
	return &Handlers{queries: q, pins: pins, prefs: prefs, stats: stats, now: time.Now}
}
