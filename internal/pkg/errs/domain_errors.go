package errs

import "errors"

// Sentinel errors shared across the usecase and view layers
var (
	// Property errors
	ErrPropertyNotFound = errors.New("property not found")

	// Booking errors
	ErrBookingRejected = errors.New("booking rejected")
	ErrFormIncomplete  = errors.New("form incomplete")
	ErrUnknownField    = errors.New("unknown form field")
	ErrInvalidGuests   = errors.New("guest count out of range")

	// Upstream errors
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
