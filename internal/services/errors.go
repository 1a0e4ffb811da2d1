// Package services implements the query layer: each query binds a cache key,
// a fetch function over the remote store or the theme-park APIs, a staleness
// window and a refetch interval. This file centralizes the service-level
// error values so handlers can map them to HTTP results consistently.
package services

import "errors"

var (
	// ErrInvalidCategory is returned for an unknown pin category.
	ErrInvalidCategory = errors.New("invalid pin category")

	// ErrInvalidMonth is returned when a year/month pair is out of range.
	ErrInvalidMonth = errors.New("invalid year or month")

	// ErrInvalidCoordinates is returned for latitude/longitude outside range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
