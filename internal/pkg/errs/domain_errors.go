package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Booking errors
	ErrUnknownBookingType = errors.New("unknown booking type")
	ErrMissingBookingID   = errors.New("no booking id found")

	// Content errors
	ErrRoomNotFound = errors.New("room not found")

	// Cache errors
	ErrCacheEntryNotFound = errors.New("cache entry not found")
	ErrCacheUnavailable   = errors.New("cache store unavailable")

	// Upstream errors
	ErrUpstreamRequest = errors.New("upstream request failed")
)
