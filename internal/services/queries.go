// Package services – QueryService
//
// QueryService exposes the cached read queries. Every method returns a
// store.Result; disabled queries (missing required parameters) return
// StatusEmpty without touching the cache or any upstream.
package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tbourn/parkstats-backend/internal/cache"
	"github.com/tbourn/parkstats-backend/internal/domain"
	"github.com/tbourn/parkstats-backend/internal/geocode"
	"github.com/tbourn/parkstats-backend/internal/normalize"
	"github.com/tbourn/parkstats-backend/internal/repo"
	"github.com/tbourn/parkstats-backend/internal/store"
	"github.com/tbourn/parkstats-backend/internal/themeparks"
)

// Store is the remote store contract required by QueryService.
type Store interface {
	Destinations(ctx context.Context, p store.Page, fields []string) store.Result[[]domain.Destination]
	DestinationBySlug(ctx context.Context, slug string) store.Result[*domain.Destination]
	DestinationsByIDs(ctx context.Context, ids []string) store.Result[[]domain.Destination]
	ParksByDestination(ctx context.Context, destinationID string) store.Result[[]domain.Park]
	ParksByIDs(ctx context.Context, ids []string) store.Result[[]domain.Park]
	MonthlyRideStats(ctx context.Context, rideID string, year, month int) store.Result[*domain.RideStatisticMonthly]
	DailyRideStats(ctx context.Context, rideID string, year, month int) store.Result[[]domain.RideStatisticDaily]
	DailyRideStat(ctx context.Context, rideID, date string) store.Result[*domain.RideStatisticDaily]
}

// ParkAPI is the theme-park API contract required by QueryService.
type ParkAPI interface {
	Entity(ctx context.Context, id string) (*themeparks.Entity, error)
	Children(ctx context.Context, id string) (*themeparks.Children, error)
	Schedule(ctx context.Context, id string) (*themeparks.Schedule, error)
	ScheduleMonth(ctx context.Context, id string, year, month int) (*themeparks.Schedule, error)
	Live(ctx context.Context, id string) ([]themeparks.LiveData, error)
}

// Geocoder resolves coordinates to a country code.
type Geocoder interface {
	CountryCode(ctx context.Context, lat, lon float64) (string, error)
}

// Staleness windows and refetch intervals per query.
var (
	DestinationsOptions = cache.Options{StaleTime: time.Hour}
	ParksOptions        = cache.Options{StaleTime: time.Hour}
	MonthlyStatsOptions = cache.Options{StaleTime: 15 * time.Minute}
	DailyStatsOptions   = cache.Options{StaleTime: 5 * time.Minute, RefetchInterval: 5 * time.Minute}
	ScheduleOptions     = cache.Options{StaleTime: 30 * time.Minute, RefetchInterval: 30 * time.Minute}
	EntityOptions       = cache.Options{StaleTime: 6 * time.Hour}
	LiveOptions         = cache.Options{StaleTime: time.Minute, RefetchInterval: time.Minute}
	CountryOptions      = cache.Options{StaleTime: 24 * time.Hour}
)

// Cache key names.
const (
	KeyDestinations      = "destinations"
	KeyDestination       = "destination"
	KeyDestinationsByIDs = "destinations-by-ids"
	KeyParks             = "parks"
	KeyParksByIDs        = "parks-by-ids"
	KeyRideStatsMonthly  = "ride-stats-monthly"
	KeyRideStatsDaily    = "ride-stats-daily"
	KeyRideStatsDay      = "ride-stats-day"
	KeySchedule          = "schedule"
	KeyEntity            = "entity"
	KeyChildren          = "children"
	KeyLive              = "live"
	KeyCountry           = "country"
)

// QueryService runs the read queries through the shared cache.
type QueryService struct {
	Store Store
	API   ParkAPI
	Geo   Geocoder
	Cache *cache.Cache
}

// NewQueryService wires a QueryService.
func NewQueryService(s Store, parks ParkAPI, geo Geocoder, c *cache.Cache) *QueryService {
	return &QueryService{Store: s, API: parks, Geo: geo, Cache: c}
}

// Destinations lists one page of destinations in the given order. The whole
// table is cached once per projection and sorted before paging, so the order
// holds across pages.
func (s *QueryService) Destinations(ctx context.Context, p store.Page, fields []string, order repo.SortOrder) store.Result[[]domain.Destination] {
	fields = sortColumns(fields, order)
	all := cached(ctx, s.Cache, "Destinations", cache.Key(KeyDestinations, fields), DestinationsOptions, []domain.Destination{},
		func(ctx context.Context) store.Result[[]domain.Destination] {
			return s.Store.Destinations(ctx, store.Page{}, fields)
		})
	if !all.OK() {
		return all
	}
	return store.FromSlice(pageOf(SortDestinations(all.Data, order), p), nil)
}

// DestinationBySlug fetches one destination.
func (s *QueryService) DestinationBySlug(ctx context.Context, slug string) store.Result[*domain.Destination] {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return disabled[*domain.Destination](nil)
	}
	return cached(ctx, s.Cache, "DestinationBySlug", cache.Key(KeyDestination, slug), DestinationsOptions, (*domain.Destination)(nil),
		func(ctx context.Context) store.Result[*domain.Destination] {
			return s.Store.DestinationBySlug(ctx, slug)
		})
}

// DestinationsByIDs fetches destinations by id. The key does not depend on
// the order of ids.
func (s *QueryService) DestinationsByIDs(ctx context.Context, ids []string) store.Result[[]domain.Destination] {
	ids = sortedIDs(ids)
	if len(ids) == 0 {
		return disabled([]domain.Destination{})
	}
	return cached(ctx, s.Cache, "DestinationsByIDs", cache.Key(KeyDestinationsByIDs, ids), DestinationsOptions, []domain.Destination{},
		func(ctx context.Context) store.Result[[]domain.Destination] {
			return s.Store.DestinationsByIDs(ctx, ids)
		})
}

// Parks lists the parks of a destination.
func (s *QueryService) Parks(ctx context.Context, destinationID string) store.Result[[]domain.Park] {
	destinationID = strings.TrimSpace(destinationID)
	if destinationID == "" {
		return disabled([]domain.Park{})
	}
	return cached(ctx, s.Cache, "Parks", cache.Key(KeyParks, destinationID), ParksOptions, []domain.Park{},
		func(ctx context.Context) store.Result[[]domain.Park] {
			return s.Store.ParksByDestination(ctx, destinationID)
		})
}

// ParksByIDs fetches parks by id.
func (s *QueryService) ParksByIDs(ctx context.Context, ids []string) store.Result[[]domain.Park] {
	ids = sortedIDs(ids)
	if len(ids) == 0 {
		return disabled([]domain.Park{})
	}
	return cached(ctx, s.Cache, "ParksByIDs", cache.Key(KeyParksByIDs, ids), ParksOptions, []domain.Park{},
		func(ctx context.Context) store.Result[[]domain.Park] {
			return s.Store.ParksByIDs(ctx, ids)
		})
}

// MonthlyRideStats fetches a ride's monthly aggregate.
func (s *QueryService) MonthlyRideStats(ctx context.Context, rideID string, year, month int) store.Result[*domain.RideStatisticMonthly] {
	rideID = strings.TrimSpace(rideID)
	if rideID == "" {
		return disabled[*domain.RideStatisticMonthly](nil)
	}
	key := cache.Key(KeyRideStatsMonthly, rideID, year, month)
	return cached(ctx, s.Cache, "MonthlyRideStats", key, MonthlyStatsOptions, (*domain.RideStatisticMonthly)(nil),
		func(ctx context.Context) store.Result[*domain.RideStatisticMonthly] {
			return s.Store.MonthlyRideStats(ctx, rideID, year, month)
		})
}

// DailyRideStats lists a ride's daily rows for one month.
func (s *QueryService) DailyRideStats(ctx context.Context, rideID string, year, month int) store.Result[[]domain.RideStatisticDaily] {
	rideID = strings.TrimSpace(rideID)
	if rideID == "" {
		return disabled([]domain.RideStatisticDaily{})
	}
	key := cache.Key(KeyRideStatsDaily, rideID, year, month)
	return cached(ctx, s.Cache, "DailyRideStats", key, DailyStatsOptions, []domain.RideStatisticDaily{},
		func(ctx context.Context) store.Result[[]domain.RideStatisticDaily] {
			return s.Store.DailyRideStats(ctx, rideID, year, month)
		})
}

// DailyRideStat fetches a ride's row for one day (YYYY-MM-DD).
func (s *QueryService) DailyRideStat(ctx context.Context, rideID, date string) store.Result[*domain.RideStatisticDaily] {
	rideID = strings.TrimSpace(rideID)
	if rideID == "" || date == "" {
		return disabled[*domain.RideStatisticDaily](nil)
	}
	key := cache.Key(KeyRideStatsDay, rideID, date)
	return cached(ctx, s.Cache, "DailyRideStat", key, DailyStatsOptions, (*domain.RideStatisticDaily)(nil),
		func(ctx context.Context) store.Result[*domain.RideStatisticDaily] {
			return s.Store.DailyRideStat(ctx, rideID, date)
		})
}

// ScheduleDay is a normalized schedule entry with "HH:mm" times.
type ScheduleDay struct {
	Date        string                  `json:"date"`
	Type        themeparks.ScheduleType `json:"type"`
	Opens       string                  `json:"opens"`
	Closes      string                  `json:"closes"`
	Description string                  `json:"description,omitempty"`
	Purchases   []themeparks.Purchase   `json:"purchases,omitempty"`
}

// EntitySchedule is the normalized schedule of an entity.
type EntitySchedule struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Timezone string        `json:"timezone,omitempty"`
	Days     []ScheduleDay `json:"days"`
}

// Schedule fetches an entity's schedule. With year and month both zero it
// returns the upcoming schedule, otherwise the given month.
func (s *QueryService) Schedule(ctx context.Context, entityID string, year, month int) store.Result[*EntitySchedule] {
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return disabled[*EntitySchedule](nil)
	}
	key := cache.Key(KeySchedule, entityID, year, month)
	return cached(ctx, s.Cache, "Schedule", key, ScheduleOptions, (*EntitySchedule)(nil),
		func(ctx context.Context) store.Result[*EntitySchedule] {
			var (
				raw *themeparks.Schedule
				err error
			)
			if year == 0 && month == 0 {
				raw, err = s.API.Schedule(ctx, entityID)
			} else {
				raw, err = s.API.ScheduleMonth(ctx, entityID, year, month)
			}
			var out *EntitySchedule
			if err == nil {
				out = toEntitySchedule(raw)
			}
			return upstream(ctx, "Schedule", out, err, (*EntitySchedule)(nil), themeparks.ErrNotFound,
				func(v *EntitySchedule) bool { return v == nil || len(v.Days) == 0 })
		})
}

func toEntitySchedule(s *themeparks.Schedule) *EntitySchedule {
	if s == nil {
		return nil
	}
	out := &EntitySchedule{ID: s.ID, Name: s.Name, Timezone: s.Timezone, Days: make([]ScheduleDay, 0, len(s.Schedule))}
	for _, e := range s.Schedule {
		out.Days = append(out.Days, ScheduleDay{
			Date:        e.Date,
			Type:        e.Type,
			Opens:       normalize.FormatTime(e.OpeningTime),
			Closes:      normalize.FormatTime(e.ClosingTime),
			Description: e.Description,
			Purchases:   e.Purchases,
		})
	}
	return out
}

// Entity fetches one entity's metadata.
func (s *QueryService) Entity(ctx context.Context, id string) store.Result[*themeparks.Entity] {
	id = strings.TrimSpace(id)
	if id == "" {
		return disabled[*themeparks.Entity](nil)
	}
	return cached(ctx, s.Cache, "Entity", cache.Key(KeyEntity, id), EntityOptions, (*themeparks.Entity)(nil),
		func(ctx context.Context) store.Result[*themeparks.Entity] {
			e, err := s.API.Entity(ctx, id)
			return upstream(ctx, "Entity", e, err, (*themeparks.Entity)(nil), themeparks.ErrNotFound,
				func(v *themeparks.Entity) bool { return v == nil })
		})
}

// Children lists an entity's children.
func (s *QueryService) Children(ctx context.Context, id string) store.Result[[]themeparks.Entity] {
	id = strings.TrimSpace(id)
	if id == "" {
		return disabled([]themeparks.Entity{})
	}
	return cached(ctx, s.Cache, "Children", cache.Key(KeyChildren, id), EntityOptions, []themeparks.Entity{},
		func(ctx context.Context) store.Result[[]themeparks.Entity] {
			ch, err := s.API.Children(ctx, id)
			var list []themeparks.Entity
			if err == nil && ch != nil {
				list = ch.Children
			}
			if list == nil {
				list = []themeparks.Entity{}
			}
			return upstream(ctx, "Children", list, err, []themeparks.Entity{}, themeparks.ErrNotFound,
				func(v []themeparks.Entity) bool { return len(v) == 0 })
		})
}

// LiveStatus is normalized live data for one entity.
type LiveStatus struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	EntityType  themeparks.EntityType `json:"entityType"`
	Status      themeparks.LiveStatus `json:"status,omitempty"`
	WaitMinutes *int                  `json:"waitMinutes"`
	// RecordedAt is the last update rounded to five minutes, "HH:mm".
	RecordedAt string `json:"recordedAt"`
	// RecordedAtTime keeps the date that RecordedAt drops.
	RecordedAtTime *time.Time `json:"recordedAtTime,omitempty"`
}

// Live fetches live status for an entity and its children.
func (s *QueryService) Live(ctx context.Context, id string) store.Result[[]LiveStatus] {
	id = strings.TrimSpace(id)
	if id == "" {
		return disabled([]LiveStatus{})
	}
	return cached(ctx, s.Cache, "Live", cache.Key(KeyLive, id), LiveOptions, []LiveStatus{},
		func(ctx context.Context) store.Result[[]LiveStatus] {
			raw, err := s.API.Live(ctx, id)
			out := make([]LiveStatus, 0, len(raw))
			for _, l := range raw {
				out = append(out, toLiveStatus(l))
			}
			return upstream(ctx, "Live", out, err, []LiveStatus{}, themeparks.ErrNotFound,
				func(v []LiveStatus) bool { return len(v) == 0 })
		})
}

func toLiveStatus(l themeparks.LiveData) LiveStatus {
	out := LiveStatus{
		ID:         l.ID,
		Name:       l.Name,
		EntityType: l.EntityType,
		Status:     l.Status,
		RecordedAt: normalize.NotAvailable,
	}
	if w, ok := l.StandbyWait(); ok {
		out.WaitMinutes = &w
	}
	if t, ok := normalize.ParseTimestamp(l.LastUpdated); ok {
		rounded := normalize.RoundTimeToFiveMinutes(t)
		out.RecordedAt = normalize.RoundToFiveMinutes(t)
		out.RecordedAtTime = &rounded
	}
	return out
}

// Country is the resolved country of a coordinate.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Country reverse-geocodes lat/lon. Coordinates are rounded to four decimal
// places for the cache key and the lookup.
func (s *QueryService) Country(ctx context.Context, lat, lon float64) store.Result[*Country] {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return store.Failure[*Country](nil, ErrInvalidCoordinates)
	}
	lat, lon = round4(lat), round4(lon)
	return cached(ctx, s.Cache, "Country", cache.Key(KeyCountry, lat, lon), CountryOptions, (*Country)(nil),
		func(ctx context.Context) store.Result[*Country] {
			code, err := s.Geo.CountryCode(ctx, lat, lon)
			var out *Country
			if err == nil {
				out = &Country{Code: code, Name: normalize.CountryName(code)}
			}
			return upstream(ctx, "Country", out, err, (*Country)(nil), geocode.ErrNoCountry,
				func(v *Country) bool { return v == nil })
		})
}

// CheckMonth validates a year/month pair.
func CheckMonth(year, month int) error {
	if year < 1970 || year > 9999 || month < 1 || month > 12 {
		return fmt.Errorf("%w: %d-%d", ErrInvalidMonth, year, month)
	}
	return nil
}

func round4(v float64) float64 { return math.Round(v*1e4) / 1e4 }

func sortedIDs(ids []string) []string {
	out := normalizeIDs(ids)
	sort.Strings(out)
	return out
}
