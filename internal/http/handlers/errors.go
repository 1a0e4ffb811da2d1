// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP responses
// (via the `fail()` helper in this package). These codes provide clients with a stable,
// machine-readable error taxonomy that supplements human-readable messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless explicitly noted.
//   - Generic codes (e.g., bad_request, not_found) mirror common HTTP status
//     semantics to aid interoperability.
//   - Domain-specific codes name the parameter that was rejected.
//   - Query failures are not errors here: they travel in the response Envelope
//     with status "failure".
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "invalid_category",
//	  "message": "unknown pin category"
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeInvalidCategory    = "invalid_category"
	ErrCodeInvalidSort        = "invalid_sort"
	ErrCodeInvalidMonth       = "invalid_month"
	ErrCodeInvalidDate        = "invalid_date"
	ErrCodeInvalidCoordinates = "invalid_coordinates"
	ErrCodeInvalidID          = "invalid_id"
	ErrCodeSaveFailed         = "save_failed"
)
