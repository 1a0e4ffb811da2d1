package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/parkstats-backend/internal/domain"
	"github.com/tbourn/parkstats-backend/internal/repo"
	"github.com/tbourn/parkstats-backend/internal/services"
	"github.com/tbourn/parkstats-backend/internal/store"
	"github.com/tbourn/parkstats-backend/internal/themeparks"
)

var errBoom = errors.New("boom")

// ---------- query service fake ----------

type call struct {
	name string
	args []any
}

type fakeQueries struct {
	mu    sync.Mutex
	calls []call

	destinations []domain.Destination
	destination  *domain.Destination
	parks        []domain.Park
	fail         bool
}

func (f *fakeQueries) record(name string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{name: name, args: args})
}

func (f *fakeQueries) last(name string) (call, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].name == name {
			return f.calls[i], true
		}
	}
	return call{}, false
}

func (f *fakeQueries) Destinations(ctx context.Context, p store.Page, fields []string, order repo.SortOrder) store.Result[[]domain.Destination] {
	f.record("Destinations", p, fields, order, services.RefreshRequested(ctx))
	if f.fail {
		return store.Failure([]domain.Destination{}, errBoom)
	}
	return store.FromSlice(services.SortDestinations(f.destinations, order), nil)
}

func (f *fakeQueries) DestinationBySlug(ctx context.Context, slug string) store.Result[*domain.Destination] {
	f.record("DestinationBySlug", slug)
	if f.destination == nil || f.destination.Slug != slug {
		return store.Empty[*domain.Destination](nil)
	}
	return store.Success(f.destination)
}

func (f *fakeQueries) Parks(ctx context.Context, destinationID string) store.Result[[]domain.Park] {
	f.record("Parks", destinationID)
	return store.FromSlice(f.parks, nil)
}

func (f *fakeQueries) ParksByIDs(ctx context.Context, ids []string) store.Result[[]domain.Park] {
	f.record("ParksByIDs", ids)
	if len(ids) == 0 {
		return store.Empty([]domain.Park{})
	}
	return store.FromSlice(f.parks, nil)
}

func (f *fakeQueries) MonthlyRideStats(ctx context.Context, rideID string, year, month int) store.Result[*domain.RideStatisticMonthly] {
	f.record("MonthlyRideStats", rideID, year, month)
	return store.Success(&domain.RideStatisticMonthly{RideID: rideID, Year: year, Month: month})
}

func (f *fakeQueries) DailyRideStats(ctx context.Context, rideID string, year, month int) store.Result[[]domain.RideStatisticDaily] {
	f.record("DailyRideStats", rideID, year, month)
	return store.Empty([]domain.RideStatisticDaily{})
}

func (f *fakeQueries) RideInsights(ctx context.Context, rideID, date string) store.Result[*services.RideInsight] {
	f.record("RideInsights", rideID, date)
	return store.Success(&services.RideInsight{RideID: rideID, Date: date, BusiestHour: "N/A"})
}

func (f *fakeQueries) Schedule(ctx context.Context, entityID string, year, month int) store.Result[*services.EntitySchedule] {
	f.record("Schedule", entityID, year, month)
	return store.Success(&services.EntitySchedule{ID: entityID, Days: []services.ScheduleDay{}})
}

func (f *fakeQueries) Entity(ctx context.Context, id string) store.Result[*themeparks.Entity] {
	f.record("Entity", id)
	return store.Success(&themeparks.Entity{ID: id, Name: "Space Mountain", EntityType: themeparks.EntityAttraction})
}

func (f *fakeQueries) Children(ctx context.Context, id string) store.Result[[]themeparks.Entity] {
	f.record("Children", id)
	return store.Empty([]themeparks.Entity{})
}

func (f *fakeQueries) Live(ctx context.Context, id string) store.Result[[]services.LiveStatus] {
	f.record("Live", id, services.RefreshRequested(ctx))
	if f.fail {
		return store.Failure([]services.LiveStatus{}, errBoom)
	}
	return store.Success([]services.LiveStatus{{ID: id, RecordedAt: "10:05"}})
}

func (f *fakeQueries) Country(ctx context.Context, lat, lon float64) store.Result[*services.Country] {
	f.record("Country", lat, lon)
	if lat > 90 || lat < -90 {
		return store.Failure[*services.Country](nil, services.ErrInvalidCoordinates)
	}
	return store.Success(&services.Country{Code: "fr", Name: "France"})
}

// ---------- pin service fake ----------

type fakePins struct {
	mu      sync.Mutex
	ids     map[string][]string
	failErr error
}

func newFakePins() *fakePins { return &fakePins{ids: map[string][]string{}} }

func (f *fakePins) check(category string) error {
	if _, err := repo.ParseCategory(category); err != nil {
		return errors.Join(services.ErrInvalidCategory, err)
	}
	return nil
}

func (f *fakePins) List(ctx context.Context, category string) ([]string, error) {
	if err := f.check(category); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ids[category]...), f.failErr
}

func (f *fakePins) Pin(ctx context.Context, category, id string) ([]string, error) {
	if err := f.check(category); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, repo.ErrEmptyID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return append([]string(nil), f.ids[category]...), f.failErr
	}
	for _, v := range f.ids[category] {
		if v == id {
			return append([]string(nil), f.ids[category]...), nil
		}
	}
	f.ids[category] = append(f.ids[category], id)
	return append([]string(nil), f.ids[category]...), nil
}

func (f *fakePins) Unpin(ctx context.Context, category, id string) ([]string, error) {
	if err := f.check(category); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []string{}
	for _, v := range f.ids[category] {
		if v != id {
			out = append(out, v)
		}
	}
	f.ids[category] = out
	return append([]string(nil), out...), nil
}

func (f *fakePins) Clear(ctx context.Context, category string) error {
	if err := f.check(category); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	delete(f.ids, category)
	return nil
}

func (f *fakePins) PinnedDestinations(ctx context.Context) store.Result[[]domain.Destination] {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Destination, 0, len(f.ids["destinations"]))
	for _, id := range f.ids["destinations"] {
		out = append(out, domain.Destination{ID: id})
	}
	return store.FromSlice(out, nil)
}

// ---------- preferences fake ----------

type fakePrefs struct {
	mu     sync.Mutex
	p      repo.Preferences
	closed bool
}

func (f *fakePrefs) Get() repo.Preferences {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.p
}

func (f *fakePrefs) SetDestinationSort(o repo.SortOrder) (repo.Preferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return f.p, repo.ErrStoreClosed
	}
	f.p.DestinationSort = o
	return f.p, nil
}

// ---------- helpers ----------

type testEnv struct {
	r       *gin.Engine
	h       *Handlers
	queries *fakeQueries
	pins    *fakePins
	prefs   *fakePrefs
}

func newTestEnv(t *testing.T, stats LocalStatsFunc) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		queries: &fakeQueries{},
		pins:    newFakePins(),
		prefs:   &fakePrefs{p: repo.DefaultPreferences()},
	}
	env.h = New(env.queries, env.pins, env.prefs, stats)
	env.h.now = func() time.Time { return time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC) }

	r := gin.New()
	r.GET("/destinations", env.h.ListDestinations)
	r.GET("/destinations/:slug", env.h.GetDestination)
	r.GET("/destinations/:slug/parks", env.h.ListDestinationParks)
	r.GET("/parks", env.h.ListParks)
	r.GET("/rides/:id/stats/monthly", env.h.MonthlyRideStats)
	r.GET("/rides/:id/stats/daily", env.h.DailyRideStats)
	r.GET("/rides/:id/insights", env.h.RideInsights)
	r.GET("/entities/:id", env.h.GetEntity)
	r.GET("/entities/:id/children", env.h.ListChildren)
	r.GET("/entities/:id/schedule", env.h.GetSchedule)
	r.GET("/entities/:id/live", env.h.GetLive)
	r.GET("/geo/country", env.h.Country)
	r.GET("/pins/:category", env.h.ListPins)
	r.PUT("/pins/:category/:id", env.h.AddPin)
	r.DELETE("/pins/:category/:id", env.h.RemovePin)
	r.DELETE("/pins/:category", env.h.ClearPins)
	r.GET("/pinned/destinations", env.h.PinnedDestinations)
	r.GET("/preferences", env.h.GetPreferences)
	r.PUT("/preferences", env.h.UpdatePreferences)
	r.GET("/health", env.h.Health)
	env.r = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Status string          `json:"status"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("json: %v (%s)", err, w.Body.String())
	}
	return env
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()
	if w.Code != wantStatus {
		t.Fatalf("status=%d want %d body=%s", w.Code, wantStatus, w.Body.String())
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code != wantCode {
		t.Fatalf("code=%q want %q", er.Code, wantCode)
	}
}
