package reservation

//go:generate mockgen -source=ports.go -destination=../../mock/reservation/mock_ports.go -package=mock_reservation

import (
	"context"
	"encoding/json"
	"net/http"

	"hotelfront/internal/infra/backend"
)

// Gateway is the reservation side of the hotel REST backend. Both calls
// return the envelope's data on success=true and an error otherwise.
type Gateway interface {
	PostEnvelope(ctx context.Context, path string, body any, token string, header http.Header) (json.RawMessage, error)
	GetEnvelope(ctx context.Context, path, token string) (json.RawMessage, error)
}

// Outcome is the {data, error} pair handed to the UI. Exactly one side is set.
type Outcome[T any] struct {
	Data  *T      `json:"data"`
	Error *string `json:"error"`
	// Status is the HTTP status a failure should be reported with.
	Status int `json:"-"`
}

func (o Outcome[T]) OK() bool {
	return o.Error == nil
}

// Message returns the error text, or "" on success.
func (o Outcome[T]) Message() string {
	if o.Error == nil {
		return ""
	}
	return *o.Error
}

func succeeded[T any](v T) Outcome[T] {
	return Outcome[T]{Data: &v}
}

func failed[T any](status int, msg string) Outcome[T] {
	return Outcome[T]{Error: &msg, Status: status}
}

// upstreamFailure keeps the backend's client-error status and reports
// everything else as a bad gateway.
func upstreamFailure[T any](err error, fallback string) Outcome[T] {
	status := backend.StatusOf(err)
	if status < http.StatusBadRequest || status >= http.StatusInternalServerError {
		status = http.StatusBadGateway
	}
	return failed[T](status, backend.MessageOf(err, fallback))
}
