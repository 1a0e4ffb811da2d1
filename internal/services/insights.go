// Package services – ride insights
//
// RideInsights composes a ride's daily statistics row with the hourly-data
// normalizers into the summary the ride detail screen renders.
package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/parkstats-backend/internal/domain"
	"github.com/tbourn/parkstats-backend/internal/normalize"
	"github.com/tbourn/parkstats-backend/internal/store"
)

// PeakHourCount is the number of peak hours reported by RideInsights.
const PeakHourCount = 3

// RideInsight summarizes one ride on one day.
type RideInsight struct {
	RideID             string                   `json:"rideId"`
	Date               string                   `json:"date"`
	AvgWaitTimeMinutes *float64                 `json:"avgWaitTimeMinutes"`
	PeakHours          []domain.HourlyDataPoint `json:"peakHours"`
	OperatingHours     []domain.HourlyDataPoint `json:"operatingHours"`
	OperatingMinutes   int                      `json:"operatingMinutes"`
	// BusiestHour is the first peak hour as "HH:mm", or "N/A".
	BusiestHour string `json:"busiestHour"`
}

// RideInsights builds the insight for rideID on date (YYYY-MM-DD).
func (s *QueryService) RideInsights(ctx context.Context, rideID, date string) store.Result[*RideInsight] {
	ctx, span := tracer.Start(ctx, "RideInsights",
		trace.WithAttributes(
			attribute.String("ride.id", rideID),
			attribute.String("date", date),
		),
	)
	defer span.End()

	row := s.DailyRideStat(ctx, rideID, date)
	if !row.OK() || row.Data == nil {
		return store.Result[*RideInsight]{Status: row.Status, Err: row.Err}
	}
	return store.Success(BuildRideInsight(row.Data))
}

// BuildRideInsight derives the insight from a daily row.
func BuildRideInsight(row *domain.RideStatisticDaily) *RideInsight {
	points := normalize.ParseHourlyData([]byte(row.HourlyData))
	operating := normalize.OperatingHours(points)

	total := 0
	for _, p := range operating {
		total += p.OperatingMinutes
	}

	peaks := normalize.PeakHours(points, PeakHourCount)
	busiest := normalize.NotAvailable
	if len(peaks) > 0 {
		busiest = fmt.Sprintf("%02d:00", peaks[0].Hour)
	}

	return &RideInsight{
		RideID:             row.RideID,
		Date:               row.Date,
		AvgWaitTimeMinutes: row.AvgWaitTimeMinutes,
		PeakHours:          peaks,
		OperatingHours:     operating,
		OperatingMinutes:   total,
		BusiestHour:        busiest,
	}
}
