package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/tbourn/parkstats-backend/internal/cache"
	"github.com/tbourn/parkstats-backend/internal/domain"
	"github.com/tbourn/parkstats-backend/internal/store"
	"github.com/tbourn/parkstats-backend/internal/themeparks"
)

var errBoom = errors.New("boom")

// ----- Fake store -----

type fakeStore struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]bool

	destinations []domain.Destination
	parks        []domain.Park
	daily        map[string]*domain.RideStatisticDaily
	lastIDs      []string
	fields       []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{calls: map[string]int{}, fail: map[string]bool{}, daily: map[string]*domain.RideStatisticDaily{}}
}

func (f *fakeStore) hit(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.fail[name]
}

func (f *fakeStore) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeStore) lastFields() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *fakeStore) setFail(name string, v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[name] = v
}

func (f *fakeStore) Destinations(ctx context.Context, p store.Page, fields []string) store.Result[[]domain.Destination] {
	f.mu.Lock()
	f.fields = fields
	f.mu.Unlock()
	if f.hit("Destinations") {
		return store.Failure([]domain.Destination{}, errBoom)
	}
	return store.FromSlice(append([]domain.Destination(nil), f.destinations...), nil)
}

func (f *fakeStore) DestinationBySlug(ctx context.Context, slug string) store.Result[*domain.Destination] {
	f.hit("DestinationBySlug")
	for i := range f.destinations {
		if f.destinations[i].Slug == slug {
			d := f.destinations[i]
			return store.Success(&d)
		}
	}
	return store.Empty[*domain.Destination](nil)
}

func (f *fakeStore) DestinationsByIDs(ctx context.Context, ids []string) store.Result[[]domain.Destination] {
	f.hit("DestinationsByIDs")
	f.mu.Lock()
	f.lastIDs = append([]string(nil), ids...)
	f.mu.Unlock()
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []domain.Destination
	for _, d := range f.destinations {
		if want[d.ID] {
			out = append(out, d)
		}
	}
	return store.FromSlice(out, nil)
}

func (f *fakeStore) ParksByDestination(ctx context.Context, destinationID string) store.Result[[]domain.Park] {
	f.hit("ParksByDestination")
	var out []domain.Park
	for _, p := range f.parks {
		if p.DestinationID != nil && *p.DestinationID == destinationID && !p.IsDestination {
			out = append(out, p)
		}
	}
	return store.FromSlice(out, nil)
}

func (f *fakeStore) ParksByIDs(ctx context.Context, ids []string) store.Result[[]domain.Park] {
	f.hit("ParksByIDs")
	return store.FromSlice([]domain.Park{}, nil)
}

func (f *fakeStore) MonthlyRideStats(ctx context.Context, rideID string, year, month int) store.Result[*domain.RideStatisticMonthly] {
	f.hit("MonthlyRideStats")
	return store.Success(&domain.RideStatisticMonthly{RideID: rideID, Year: year, Month: month})
}

func (f *fakeStore) DailyRideStats(ctx context.Context, rideID string, year, month int) store.Result[[]domain.RideStatisticDaily] {
	f.hit("DailyRideStats")
	return store.FromSlice([]domain.RideStatisticDaily{}, nil)
}

func (f *fakeStore) DailyRideStat(ctx context.Context, rideID, date string) store.Result[*domain.RideStatisticDaily] {
	if f.hit("DailyRideStat") {
		return store.Failure[*domain.RideStatisticDaily](nil, errBoom)
	}
	if row, ok := f.daily[rideID+"|"+date]; ok {
		return store.Success(row)
	}
	return store.Empty[*domain.RideStatisticDaily](nil)
}

// ----- Fake theme-park API -----

type fakeParkAPI struct {
	mu       sync.Mutex
	calls    int
	entity   *themeparks.Entity
	children *themeparks.Children
	schedule *themeparks.Schedule
	live     []themeparks.LiveData
	err      error
	month    [2]int
}

func (f *fakeParkAPI) record() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeParkAPI) Entity(ctx context.Context, id string) (*themeparks.Entity, error) {
	if err := f.record(); err != nil {
		return nil, err
	}
	return f.entity, nil
}

func (f *fakeParkAPI) Children(ctx context.Context, id string) (*themeparks.Children, error) {
	if err := f.record(); err != nil {
		return nil, err
	}
	return f.children, nil
}

func (f *fakeParkAPI) Schedule(ctx context.Context, id string) (*themeparks.Schedule, error) {
	if err := f.record(); err != nil {
		return nil, err
	}
	return f.schedule, nil
}

func (f *fakeParkAPI) ScheduleMonth(ctx context.Context, id string, year, month int) (*themeparks.Schedule, error) {
	if err := f.record(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.month = [2]int{year, month}
	f.mu.Unlock()
	return f.schedule, nil
}

func (f *fakeParkAPI) Live(ctx context.Context, id string) ([]themeparks.LiveData, error) {
	if err := f.record(); err != nil {
		return nil, err
	}
	return f.live, nil
}

// ----- Fake geocoder -----

type fakeGeo struct {
	mu    sync.Mutex
	calls int
	code  string
	err   error
	last  [2]float64
}

func (f *fakeGeo) CountryCode(ctx context.Context, lat, lon float64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = [2]float64{lat, lon}
	return f.code, f.err
}

func newTestService(t *testing.T, s Store, parks ParkAPI, geo Geocoder) *QueryService {
	t.Helper()
	c := cache.New(cache.Config{})
	t.Cleanup(c.Close)
	return NewQueryService(s, parks, geo, c)
}

func ptr[T any](v T) *T { return &v }
