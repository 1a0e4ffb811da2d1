package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tbourn/parkstats-backend/internal/domain"
	"github.com/tbourn/parkstats-backend/internal/sysutil"
)

// Page carries limit/offset pagination. Limit <= 0 means no limit.
type Page struct {
	Limit  int
	Offset int
}

const dateLayout = "2006-01-02"

// Destinations lists destinations ordered by name, optionally projected to
// fields.
func (c *Client) Destinations(ctx context.Context, p Page, fields []string) Result[[]domain.Destination] {
	return ListResult[domain.Destination](ctx, c, Query{
		Table:   domain.Destination{}.TableName(),
		Columns: fields,
		Orders:  []Order{Asc("name"), Asc("id")},
		Limit:   p.Limit,
		Offset:  p.Offset,
	})
}

// DestinationBySlug fetches the destination routed by slug.
func (c *Client) DestinationBySlug(ctx context.Context, slug string) Result[*domain.Destination] {
	return SingleResult[domain.Destination](ctx, c, Query{
		Table:   domain.Destination{}.TableName(),
		Filters: []Filter{Eq("slug", slug)},
	})
}

// DestinationsByIDs fetches the destinations with the given ids. Row order
// is by name; callers needing input order must reorder.
func (c *Client) DestinationsByIDs(ctx context.Context, ids []string) Result[[]domain.Destination] {
	return ListResult[domain.Destination](ctx, c, Query{
		Table:   domain.Destination{}.TableName(),
		Filters: []Filter{In("id", ids)},
		Orders:  []Order{Asc("name")},
	})
}

// ParksByDestination lists the regular parks of a destination, excluding the
// row that mirrors the destination itself.
func (c *Client) ParksByDestination(ctx context.Context, destinationID string) Result[[]domain.Park] {
	return validParks(ctx, ListResult[domain.Park](ctx, c, Query{
		Table: domain.Park{}.TableName(),
		Filters: []Filter{
			Eq("destination_id", destinationID),
			Neq("is_destination", true),
		},
		Orders: []Order{Asc("name")},
	}))
}

// ParksByIDs fetches the parks with the given ids.
func (c *Client) ParksByIDs(ctx context.Context, ids []string) Result[[]domain.Park] {
	return validParks(ctx, ListResult[domain.Park](ctx, c, Query{
		Table:   domain.Park{}.TableName(),
		Filters: []Filter{In("id", ids)},
		Orders:  []Order{Asc("name")},
	}))
}

// validParks drops rows without a destination reference. A read left with no
// valid rows is Empty.
func validParks(ctx context.Context, r Result[[]domain.Park]) Result[[]domain.Park] {
	if !r.OK() {
		return r
	}
	out := make([]domain.Park, 0, len(r.Data))
	for _, p := range r.Data {
		if err := p.Validate(); err != nil {
			sysutil.Logger(ctx).Warn().Err(err).Str("park_id", p.ID).Msg("dropping invalid park row")
			continue
		}
		out = append(out, p)
	}
	return FromSlice(out, nil)
}

// MonthlyRideStats fetches the monthly aggregate for a ride.
func (c *Client) MonthlyRideStats(ctx context.Context, rideID string, year, month int) Result[*domain.RideStatisticMonthly] {
	if month < 1 || month > 12 {
		return Failure[*domain.RideStatisticMonthly](nil, fmt.Errorf("%w: month %d", ErrInvalidQuery, month))
	}
	return SingleResult[domain.RideStatisticMonthly](ctx, c, Query{
		Table: domain.RideStatisticMonthly{}.TableName(),
		Filters: []Filter{
			Eq("ride_id", rideID),
			Eq("year", year),
			Eq("month", month),
		},
	})
}

// DailyRideStats lists the daily rows of a ride within one calendar month,
// oldest first.
func (c *Client) DailyRideStats(ctx context.Context, rideID string, year, month int) Result[[]domain.RideStatisticDaily] {
	if month < 1 || month > 12 {
		return Failure([]domain.RideStatisticDaily{}, fmt.Errorf("%w: month %d", ErrInvalidQuery, month))
	}
	from, to := MonthBounds(year, month)
	return ListResult[domain.RideStatisticDaily](ctx, c, Query{
		Table: domain.RideStatisticDaily{}.TableName(),
		Filters: []Filter{
			Eq("ride_id", rideID),
			Gte("date", from),
			Lt("date", to),
		},
		Orders: []Order{Asc("date")},
	})
}

// DailyRideStat fetches a single day's row for a ride. date is YYYY-MM-DD.
func (c *Client) DailyRideStat(ctx context.Context, rideID, date string) Result[*domain.RideStatisticDaily] {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return Failure[*domain.RideStatisticDaily](nil, fmt.Errorf("%w: date %q", ErrInvalidQuery, date))
	}
	return SingleResult[domain.RideStatisticDaily](ctx, c, Query{
		Table:   domain.RideStatisticDaily{}.TableName(),
		Filters: []Filter{Eq("ride_id", rideID), Eq("date", date)},
	})
}

// MonthBounds returns the first day of the month and the first day of the
// following month, both as YYYY-MM-DD.
func MonthBounds(year, month int) (from, to string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start.Format(dateLayout), start.AddDate(0, 1, 0).Format(dateLayout)
}
