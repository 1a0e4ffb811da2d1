// Package normalize converts heterogeneous upstream shapes (ISO timestamps,
// hourly JSON blobs, country codes) into the stable representations the API
// returns. Nothing in this package returns an error: malformed or absent
// input maps to a defined sentinel instead.
package normalize

import (
	"fmt"
	"strings"
	"time"
)

// NotAvailable is the sentinel emitted for absent or unparseable times.
const NotAvailable = "N/A"

// isoLayouts are tried in order. Offset-bearing layouts keep the wall clock
// of the offset they carry.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// clockLayouts cover bare "HH:mm" style input.
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04",
}

// FormatTime renders s as a 24-hour "HH:mm" string. It accepts ISO-8601
// timestamps and bare clock times; anything else yields NotAvailable.
func FormatTime(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NotAvailable
	}
	if t, ok := parseTimestamp(s); ok {
		return t.Format("15:04")
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04")
		}
	}
	return NotAvailable
}

// FormatTimePtr is FormatTime for optional upstream fields.
func FormatTimePtr(s *string) string {
	if s == nil {
		return NotAvailable
	}
	return FormatTime(*s)
}

// ParseTimestamp parses an ISO-8601 timestamp using the accepted layouts.
func ParseTimestamp(s string) (time.Time, bool) {
	return parseTimestamp(strings.TrimSpace(s))
}

func parseTimestamp(s string) (time.Time, bool) {
	if len(s) < len("2006-01-02T15:04") {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RoundTimeToFiveMinutes rounds t to the nearest multiple of five minutes,
// ties rounding up. Seconds are ignored. The date carries over when rounding
// crosses an hour or day boundary.
func RoundTimeToFiveMinutes(t time.Time) time.Time {
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	m := ((t.Minute() + 2) / 5) * 5
	return base.Add(time.Duration(m) * time.Minute)
}

// RoundToFiveMinutes rounds t to the nearest five minutes and renders the
// result as "HH:mm". When rounding reaches 60 the hour increments and the
// minutes reset; the day component is not part of the output.
func RoundToFiveMinutes(t time.Time) string {
	r := RoundTimeToFiveMinutes(t)
	return fmt.Sprintf("%02d:%02d", r.Hour(), r.Minute())
}
