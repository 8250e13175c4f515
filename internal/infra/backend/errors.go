package backend

import (
	"context"
	"errors"
	"net/http"

	"hotelfront/internal/pkg/errs"
)

// APIError is an unsuccessful backend reply: a non-2xx status or an envelope
// with success=false. Message is the server's text or the caller's fallback.
type APIError struct {
	Status  int
	Message string
	Path    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	return target == errs.ErrUpstreamRequest
}

// MessageOf extracts the user-facing message from err. Errors that did not
// come from the backend yield fallback.
func MessageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsTransient reports whether retrying the request may succeed. Client errors
// other than 408 and 429 are permanent, as is cancellation of the caller.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == http.StatusRequestTimeout, apiErr.Status == http.StatusTooManyRequests:
			return true
		case apiErr.Status >= 400 && apiErr.Status < 500:
			return false
		}
	}
	return true
}
