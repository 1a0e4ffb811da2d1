package normalize

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/tbourn/parkstats-backend/internal/domain"
)

// ParseHourlyData interprets raw as a sequence of hourly points. Only
// array-shaped JSON is accepted; anything else yields an empty slice.
// Elements that are not objects, or whose hour is outside 0..23, are skipped,
// as are repeats of an hour already seen.
func ParseHourlyData(raw []byte) []domain.HourlyDataPoint {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return []domain.HourlyDataPoint{}
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return []domain.HourlyDataPoint{}
	}
	out := make([]domain.HourlyDataPoint, 0, len(elems))
	seen := make(map[int]struct{}, len(elems))
	for _, e := range elems {
		e = bytes.TrimSpace(e)
		if len(e) == 0 || e[0] != '{' {
			continue
		}
		var p domain.HourlyDataPoint
		if err := json.Unmarshal(e, &p); err != nil {
			continue
		}
		if p.Hour < 0 || p.Hour > 23 {
			continue
		}
		if _, dup := seen[p.Hour]; dup {
			continue
		}
		seen[p.Hour] = struct{}{}
		out = append(out, p)
	}
	return out
}

// HourAt returns the point recorded for hour, if any.
func HourAt(points []domain.HourlyDataPoint, hour int) (domain.HourlyDataPoint, bool) {
	for _, p := range points {
		if p.Hour == hour {
			return p, true
		}
	}
	return domain.HourlyDataPoint{}, false
}

// PeakHours returns the n points with the highest average wait, highest
// first. Equal averages keep their original order. The input is not modified.
func PeakHours(points []domain.HourlyDataPoint, n int) []domain.HourlyDataPoint {
	if n <= 0 || len(points) == 0 {
		return []domain.HourlyDataPoint{}
	}
	sorted := make([]domain.HourlyDataPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AvgWaitMinutes > sorted[j].AvgWaitMinutes
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// OperatingHours keeps the points with a positive operating-minutes count.
func OperatingHours(points []domain.HourlyDataPoint) []domain.HourlyDataPoint {
	out := make([]domain.HourlyDataPoint, 0, len(points))
	for _, p := range points {
		if p.OperatingMinutes > 0 {
			out = append(out, p)
		}
	}
	return out
}
