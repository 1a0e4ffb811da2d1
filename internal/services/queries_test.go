package services

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/tbourn/parkstats-backend/internal/domain"
	"github.com/tbourn/parkstats-backend/internal/geocode"
	"github.com/tbourn/parkstats-backend/internal/repo"
	"github.com/tbourn/parkstats-backend/internal/store"
	"github.com/tbourn/parkstats-backend/internal/themeparks"
)

func TestDestinations_FreshHitSkipsStore(t *testing.T) {
	fs := newFakeStore()
	fs.destinations = []domain.Destination{{ID: "d1", Name: "Walt Disney World", Slug: "wdw"}}
	svc := newTestService(t, fs, &fakeParkAPI{}, &fakeGeo{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		r := svc.Destinations(ctx, store.Page{Limit: 10}, nil, repo.SortAlphabetical)
		if r.Status != store.StatusSuccess || len(r.Data) != 1 {
			t.Fatalf("call %d: %+v", i, r)
		}
	}
	if n := fs.count("Destinations"); n != 1 {
		t.Fatalf("expected 1 store call, got %d", n)
	}

	// Pages and orders are cut from the same cached rows.
	r := svc.Destinations(ctx, store.Page{Limit: 10, Offset: 10}, nil, repo.SortCountry)
	if r.Status != store.StatusEmpty || r.Data == nil {
		t.Fatalf("page past the end: %+v", r)
	}
	if n := fs.count("Destinations"); n != 1 {
		t.Fatalf("expected 1 store call, got %d", n)
	}

	// A different projection is a different key.
	_ = svc.Destinations(ctx, store.Page{}, []string{"id", "name"}, repo.SortAlphabetical)
	if n := fs.count("Destinations"); n != 2 {
		t.Fatalf("expected 2 store calls, got %d", n)
	}
}

func TestDestinations_OrderHoldsAcrossPages(t *testing.T) {
	fs := newFakeStore()
	fs.destinations = []domain.Destination{
		{ID: "1", Name: "Alton Towers", CountryCode: "gb"},
		{ID: "2", Name: "Busch Gardens", CountryCode: "us"},
		{ID: "3", Name: "Cedar Point", CountryCode: "us"},
	}
	svc := newTestService(t, fs, &fakeParkAPI{}, &fakeGeo{})
	ctx := context.Background()

	pageNames := func(p store.Page, order repo.SortOrder) []string {
		var out []string
		for _, d := range svc.Destinations(ctx, p, nil, order).Data {
			out = append(out, d.Name)
		}
		return out
	}

	tests := []struct {
		order repo.SortOrder
		page  store.Page
		want  []string
	}{
		{repo.SortReverseAlphabetical, store.Page{Limit: 2}, []string{"Cedar Point", "Busch Gardens"}},
		{repo.SortReverseAlphabetical, store.Page{Limit: 2, Offset: 2}, []string{"Alton Towers"}},
		{repo.SortAlphabetical, store.Page{Limit: 2, Offset: 1}, []string{"Busch Gardens", "Cedar Point"}},
		{repo.SortCountry, store.Page{Limit: 1, Offset: 1}, []string{"Busch Gardens"}},
	}
	for _, tt := range tests {
		if got := pageNames(tt.page, tt.order); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s %+v = %v, want %v", tt.order, tt.page, got, tt.want)
		}
	}
}

func TestDestinations_ProjectionKeepsSortColumns(t *testing.T) {
	fs := newFakeStore()
	svc := newTestService(t, fs, &fakeParkAPI{}, &fakeGeo{})

	_ = svc.Destinations(context.Background(), store.Page{}, []string{"id"}, repo.SortCountry)
	if got := fs.lastFields(); !reflect.DeepEqual(got, []string{"id", "name", "country_code"}) {
		t.Fatalf("fields=%v", got)
	}
	_ = svc.Destinations(context.Background(), store.Page{}, nil, repo.SortCountry)
	if got := fs.lastFields(); got != nil {
		t.Fatalf("empty projection must stay empty, got %v", got)
	}
}

func TestWithRefresh_RefetchesFreshEntry(t *testing.T) {
	fs := newFakeStore()
	fs.destinations = []domain.Destination{{ID: "d1", Name: "A"}}
	svc := newTestService(t, fs, &fakeParkAPI{}, &fakeGeo{})
	ctx := context.Background()

	_ = svc.Destinations(ctx, store.Page{}, nil, repo.SortAlphabetical)
	_ = svc.Destinations(ctx, store.Page{}, nil, repo.SortAlphabetical)
	if n := fs.count("Destinations"); n != 1 {
		t.Fatalf("expected 1 store call, got %d", n)
	}

	if RefreshRequested(ctx) {
		t.Fatalf("plain context must not request a refresh")
	}
	r := svc.Destinations(WithRefresh(ctx), store.Page{}, nil, repo.SortAlphabetical)
	if !r.OK() {
		t.Fatalf("refresh: %+v", r)
	}
	if n := fs.count("Destinations"); n != 2 {
		t.Fatalf("refresh must refetch, got %d store calls", n)
	}
}

func TestDestinations_FailureIsNotCached(t *testing.T) {
	fs := newFakeStore()
	fs.destinations = []domain.Destination{{ID: "d1", Name: "A"}}
	fs.setFail("Destinations", true)
	svc := newTestService(t, fs, &fakeParkAPI{}, &fakeGeo{})
	ctx := context.Background()

	r := svc.Destinations(ctx, store.Page{}, nil, repo.SortAlphabetical)
	if r.Status != store.StatusFailure || r.Data == nil || len(r.Data) != 0 {
		t.Fatalf("expected failure with empty data, got %+v", r)
	}
	if !errors.Is(r.Err, errBoom) {
		t.Fatalf("expected errBoom, got %v", r.Err)
	}

	fs.setFail("Destinations", false)
	r = svc.Destinations(ctx, store.Page{}, nil, repo.SortAlphabetical)
	if !r.OK() {
		t.Fatalf("retry should succeed, got %+v", r)
	}
	if n := fs.count("Destinations"); n != 2 {
		t.Fatalf("expected 2 store calls, got %d", n)
	}
}

func TestDisabledQueries_DoNotFetch(t *testing.T) {
	fs := newFakeStore()
	api := &fakeParkAPI{}
	svc := newTestService(t, fs, api, &fakeGeo{})
	ctx := context.Background()

	if r := svc.DestinationsByIDs(ctx, nil); r.Status != store.StatusEmpty || r.Data == nil {
		t.Fatalf("DestinationsByIDs(nil) = %+v", r)
	}
	if r := svc.DestinationsByIDs(ctx, []string{" ", ""}); r.Status != store.StatusEmpty {
		t.Fatalf("DestinationsByIDs(blank) = %+v", r)
	}
	if r := svc.ParksByIDs(ctx, []string{}); r.Status != store.StatusEmpty {
		t.Fatalf("ParksByIDs = %+v", r)
	}
	if r := svc.DestinationBySlug(ctx, ""); r.Status != store.StatusEmpty {
		t.Fatalf("DestinationBySlug = %+v", r)
	}
	if r := svc.Parks(ctx, ""); r.Status != store.StatusEmpty {
		t.Fatalf("Parks = %+v", r)
	}
	if r := svc.MonthlyRideStats(ctx, "", 2024, 1); r.Status != store.StatusEmpty {
		t.Fatalf("MonthlyRideStats = %+v", r)
	}
	if r := svc.DailyRideStats(ctx, "", 2024, 1); r.Status != store.StatusEmpty {
		t.Fatalf("DailyRideStats = %+v", r)
	}
	if r := svc.Live(ctx, ""); r.Status != store.StatusEmpty {
		t.Fatalf("Live = %+v", r)
	}
	if r := svc.Schedule(ctx, "", 0, 0); r.Status != store.StatusEmpty {
		t.Fatalf("Schedule = %+v", r)
	}

	if len(fs.calls) != 0 || api.calls != 0 {
		t.Fatalf("disabled queries must not fetch: store=%v api=%d", fs.calls, api.calls)
	}
	if svc.Cache.Len() != 0 {
		t.Fatalf("disabled queries must not touch the cache, len=%d", svc.Cache.Len())
	}
}

func TestDestinationsByIDs_KeyIgnoresOrderAndDuplicates(t *testing.T) {
	fs := newFakeStore()
	fs.destinations = []domain.Destination{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	svc := newTestService(t, fs, &fakeParkAPI{}, &fakeGeo{})
	ctx := context.Background()

	_ = svc.DestinationsByIDs(ctx, []string{"b", "a"})
	_ = svc.DestinationsByIDs(ctx, []string{"a", "b", "a"})
	if n := fs.count("DestinationsByIDs"); n != 1 {
		t.Fatalf("expected one store call, got %d", n)
	}
	if !reflect.DeepEqual(fs.lastIDs, []string{"a", "b"}) {
		t.Fatalf("store got ids %v", fs.lastIDs)
	}
}

func TestParks_ByDestination(t *testing.T) {
	fs := newFakeStore()
	fs.parks = []domain.Park{
		{ID: "wdw", DestinationID: ptr("wdw"), Name: "WDW", IsDestination: true},
		{ID: "mk", DestinationID: ptr("wdw"), Name: "Magic Kingdom"},
		{ID: "dl", DestinationID: ptr("dlr"), Name: "Disneyland"},
	}
	svc := newTestService(t, fs, &fakeParkAPI{}, &fakeGeo{})
	r := svc.Parks(context.Background(), "wdw")
	if !r.OK() || len(r.Data) != 1 || r.Data[0].ID != "mk" {
		t.Fatalf("Parks = %+v", r)
	}
}

func TestSchedule_NormalizesTimesAndUsesMonth(t *testing.T) {
	api := &fakeParkAPI{schedule: &themeparks.Schedule{
		ID: "mk", Name: "Magic Kingdom", Timezone: "America/New_York",
		Schedule: []themeparks.ScheduleEntry{
			{Date: "2024-07-01", Type: themeparks.ScheduleOperating, OpeningTime: "2024-07-01T09:00:00-04:00", ClosingTime: "2024-07-01T23:30:00-04:00"},
			{Date: "2024-07-02", Type: themeparks.ScheduleInfo},
		},
	}}
	svc := newTestService(t, newFakeStore(), api, &fakeGeo{})

	r := svc.Schedule(context.Background(), "mk", 2024, 7)
	if !r.OK() {
		t.Fatalf("Schedule = %+v", r)
	}
	if api.month != [2]int{2024, 7} {
		t.Fatalf("month not forwarded: %v", api.month)
	}
	d := r.Data.Days
	if len(d) != 2 || d[0].Opens != "09:00" || d[0].Closes != "23:30" {
		t.Fatalf("days = %+v", d)
	}
	if d[1].Opens != "N/A" || d[1].Closes != "N/A" {
		t.Fatalf("missing times should be N/A: %+v", d[1])
	}
}

func TestEntity_NotFoundIsEmptyOtherErrorsFail(t *testing.T) {
	api := &fakeParkAPI{err: &themeparks.APIError{StatusCode: 404, URL: "x"}}
	svc := newTestService(t, newFakeStore(), api, &fakeGeo{})
	if r := svc.Entity(context.Background(), "missing"); r.Status != store.StatusEmpty {
		t.Fatalf("404 should be empty, got %+v", r)
	}

	api2 := &fakeParkAPI{err: &themeparks.APIError{StatusCode: 503, URL: "x"}}
	svc2 := newTestService(t, newFakeStore(), api2, &fakeGeo{})
	if r := svc2.Entity(context.Background(), "x"); r.Status != store.StatusFailure {
		t.Fatalf("503 should fail, got %+v", r)
	}
}

func TestChildren_ReturnsList(t *testing.T) {
	api := &fakeParkAPI{children: &themeparks.Children{ID: "mk", Children: []themeparks.Entity{{ID: "r1", Name: "Ride"}}}}
	svc := newTestService(t, newFakeStore(), api, &fakeGeo{})
	r := svc.Children(context.Background(), "mk")
	if !r.OK() || len(r.Data) != 1 || r.Data[0].ID != "r1" {
		t.Fatalf("Children = %+v", r)
	}
}

func TestLive_RoundsRecordedTime(t *testing.T) {
	api := &fakeParkAPI{live: []themeparks.LiveData{
		{ID: "r1", Name: "Coaster", Status: themeparks.StatusOperating, LastUpdated: "2024-07-01T23:58:10-04:00",
			Queue: &themeparks.Queue{Standby: &themeparks.QueueTime{WaitTime: ptr(40)}}},
		{ID: "r2", Name: "Closed", Status: themeparks.StatusClosed},
	}}
	svc := newTestService(t, newFakeStore(), api, &fakeGeo{})

	r := svc.Live(context.Background(), "mk")
	if !r.OK() || len(r.Data) != 2 {
		t.Fatalf("Live = %+v", r)
	}
	first := r.Data[0]
	if first.RecordedAt != "00:00" || first.WaitMinutes == nil || *first.WaitMinutes != 40 {
		t.Fatalf("first = %+v", first)
	}
	if first.RecordedAtTime == nil || first.RecordedAtTime.Day() != 2 {
		t.Fatalf("rounded time should carry to next day: %v", first.RecordedAtTime)
	}
	if r.Data[1].RecordedAt != "N/A" || r.Data[1].WaitMinutes != nil {
		t.Fatalf("second = %+v", r.Data[1])
	}
}

func TestCountry_RoundsCoordinatesAndNamesCountry(t *testing.T) {
	geo := &fakeGeo{code: "fr"}
	svc := newTestService(t, newFakeStore(), &fakeParkAPI{}, geo)
	ctx := context.Background()

	r := svc.Country(ctx, 48.872210, 2.775810)
	if !r.OK() || r.Data.Code != "fr" || r.Data.Name != "France" {
		t.Fatalf("Country = %+v", r)
	}
	_ = svc.Country(ctx, 48.872240, 2.775790)
	if geo.calls != 1 {
		t.Fatalf("nearby coordinates should share a cache entry, calls=%d", geo.calls)
	}
	if geo.last != [2]float64{48.8722, 2.7758} {
		t.Fatalf("lookup should use rounded coordinates, got %v", geo.last)
	}
}

func TestCountry_NoCountryIsEmptyInvalidFails(t *testing.T) {
	svc := newTestService(t, newFakeStore(), &fakeParkAPI{}, &fakeGeo{err: geocode.ErrNoCountry})
	if r := svc.Country(context.Background(), 0, 0); r.Status != store.StatusEmpty {
		t.Fatalf("no country should be empty, got %+v", r)
	}
	r := svc.Country(context.Background(), math.NaN(), 0)
	if r.Status != store.StatusFailure || !errors.Is(r.Err, ErrInvalidCoordinates) {
		t.Fatalf("NaN should fail, got %+v", r)
	}
}

func TestCheckMonth(t *testing.T) {
	if err := CheckMonth(2024, 12); err != nil {
		t.Fatalf("valid month: %v", err)
	}
	for _, ym := range [][2]int{{2024, 0}, {2024, 13}, {1900, 1}} {
		if err := CheckMonth(ym[0], ym[1]); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("%v: expected ErrInvalidMonth, got %v", ym, err)
		}
	}
}
