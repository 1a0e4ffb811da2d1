// Package domain defines the persistence models for destinations, parks and
// ride wait-time statistics, plus the local key-value record used for
// on-device state. These types are mapped with GORM and are shared by the
// remote store client, the local repository and the service layer.
package domain

import (
	"errors"
	"strings"
)

// ErrParkWithoutDestination is returned by Park.Validate when a regular park
// does not reference its owning destination.
var ErrParkWithoutDestination = errors.New("park has no destination_id")

// Destination is a top-level theme-park location grouping one or more parks.
//
// Fields:
//   - ID: upstream entity id (primary key).
//   - Slug: stable, URL-safe name used for routing; unique.
//   - ParkIDs: ids of the parks that belong to the destination.
//   - CountryCode: optional ISO 3166 code, filled by reverse geocoding.
//   - Latitude / Longitude: optional location of the destination.
type Destination struct {
	ID          string     `json:"id"           gorm:"type:varchar(64);primaryKey"`
	Name        string     `json:"name"         gorm:"type:varchar(255);not null;index"`
	Slug        string     `json:"slug"         gorm:"type:varchar(255);not null;uniqueIndex"`
	ParkIDs     StringList `json:"park_ids"     gorm:"column:park_ids;type:text"`
	CountryCode string     `json:"country_code" gorm:"type:varchar(3)"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
}

// TableName returns the database table name for Destination.
func (Destination) TableName() string { return "destinations" }

// Park is a single venue. Rows flagged IsDestination mirror the destination
// itself and are the only rows allowed to omit DestinationID.
type Park struct {
	ID            string  `json:"id"             gorm:"type:varchar(64);primaryKey"`
	DestinationID *string `json:"destination_id" gorm:"type:varchar(64);index"`
	Name          string  `json:"name"           gorm:"type:varchar(255);not null"`
	Slug          string  `json:"slug"           gorm:"type:varchar(255)"`
	IsDestination bool    `json:"is_destination" gorm:"not null;default:false"`
	Timezone      string  `json:"timezone"       gorm:"type:varchar(64)"`
}

// TableName returns the database table name for Park.
func (Park) TableName() string { return "parks" }

// Validate checks the destination reference invariant.
func (p Park) Validate() error {
	if p.IsDestination {
		return nil
	}
	if p.DestinationID == nil || strings.TrimSpace(*p.DestinationID) == "" {
		return ErrParkWithoutDestination
	}
	return nil
}

// RideStatisticMonthly aggregates one ride's waits over a calendar month.
// HourlyData holds the raw per-hour JSON blob as stored upstream.
type RideStatisticMonthly struct {
	RideID             string   `json:"ride_id"               gorm:"type:varchar(64);primaryKey"`
	Year               int      `json:"year"                  gorm:"primaryKey"`
	Month              int      `json:"month"                 gorm:"primaryKey"`
	AvgWaitTimeMinutes *float64 `json:"avg_wait_time_minutes"`
	MaxWaitTimeMinutes *float64 `json:"max_wait_time_minutes"`
	HourlyData         RawJSON  `json:"hourly_data"           gorm:"type:text"`
}

// TableName returns the database table name for RideStatisticMonthly.
func (RideStatisticMonthly) TableName() string { return "ride_statistics_monthly" }

// RideStatisticDaily holds one ride's statistics for a single day. Date is
// stored as YYYY-MM-DD so range filters compare lexicographically.
type RideStatisticDaily struct {
	RideID             string   `json:"ride_id"               gorm:"type:varchar(64);primaryKey"`
	Date               string   `json:"date"                  gorm:"type:varchar(10);primaryKey"`
	AvgWaitTimeMinutes *float64 `json:"avg_wait_time_minutes"`
	HourlyData         RawJSON  `json:"hourly_data"           gorm:"type:text"`
}

// TableName returns the database table name for RideStatisticDaily.
func (RideStatisticDaily) TableName() string { return "ride_statistics_daily" }

// HourlyDataPoint is one hour's aggregated wait-time statistic for a ride.
type HourlyDataPoint struct {
	Hour             int     `json:"hour"`
	AvgWaitMinutes   float64 `json:"avg_wait_time_minutes"`
	OperatingMinutes int     `json:"operating_minutes"`
}
