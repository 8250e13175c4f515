package reservation

//go:generate mockgen -source=service.go -destination=../../mock/reservation/mock_service.go -package=mock_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"hotelfront/internal/domain/booking"
	"hotelfront/internal/pkg/clock"
	"hotelfront/internal/pkg/errs"
	"hotelfront/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	msgInvalidType     = "Invalid booking type"
	msgNoBookingID     = "No booking ID found"
	msgFetchFailed     = "Failed to fetch booking details"
	msgInvalidResponse = "Invalid response from server"
	msgRoomBooked      = "Room booked successfully!"
)

type Service interface {
	CreateReservation(ctx context.Context, bookingType string, form booking.Record, token string) Outcome[booking.Record]
	FetchReservationByID(ctx context.Context, bookingType, id, token string) Outcome[booking.Record]
	CreateRoomBooking(ctx context.Context, roomData json.RawMessage, token string) Outcome[json.RawMessage]
	GetRoomBookings(ctx context.Context, roomID, token string) Outcome[json.RawMessage]
	// Confirm re-fetches the canonical record for a just-created booking and
	// merges it over what the caller already knows.
	Confirm(ctx context.Context, initial booking.Record, token string) Outcome[booking.Record]
}

type serviceImpl struct {
	gateway  Gateway
	retrier  *Retrier
	notifier shared.Notifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewService(gateway Gateway, retrier *Retrier, notifier shared.Notifier, clk clock.Clock, logger *slog.Logger) Service {
	return &serviceImpl{
		gateway:  gateway,
		retrier:  retrier,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

func (s *serviceImpl) CreateReservation(ctx context.Context, bookingType string, form booking.Record, token string) Outcome[booking.Record] {
	slug, err := booking.ParseType(bookingType)
	if err != nil {
		s.logger.WarnContext(ctx, "reservation rejected", "type", bookingType, "error", err)
		s.notify(ctx, shared.LevelError, msgInvalidType)
		return failed[booking.Record](http.StatusBadRequest, msgInvalidType)
	}

	payload := form
	if slug == booking.TypeAccommodation {
		payload, err = booking.PrepareAccommodation(form)
		if err != nil {
			msg, ok := booking.ValidationMessage(err)
			if !ok {
				msg = err.Error()
			}
			s.notify(ctx, shared.LevelError, msg)
			return failed[booking.Record](http.StatusUnprocessableEntity, msg)
		}
	}
	payload.Type = slug.String()

	// One key per submission, reused by every retry of it.
	idempotencyKey := uuid.NewString()
	header := http.Header{}
	header.Set("Idempotency-Key", idempotencyKey)

	path := "/reservations/" + slug.String()
	data, err := RequestWithRetry(ctx, s.retrier, func(ctx context.Context) (json.RawMessage, error) {
		return s.gateway.PostEnvelope(ctx, path, payload, token, header)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "reservation creation failed",
			"type", slug,
			"idempotency_key", idempotencyKey,
			"error", err,
		)
		return upstreamFailure[booking.Record](err, fallbackErrorMessage)
	}

	rec, err := decodeRecord(data)
	if err != nil {
		s.logger.ErrorContext(ctx, "reservation response undecodable", "type", slug, "error", err)
		return failed[booking.Record](http.StatusBadGateway, msgInvalidResponse)
	}

	s.logger.InfoContext(ctx, "reservation created", "type", slug, "booking_id", rec.ID, "idempotency_key", idempotencyKey)
	s.notify(ctx, shared.LevelSuccess, fmt.Sprintf("%s reservation created!", slug))
	return succeeded(rec)
}

func (s *serviceImpl) FetchReservationByID(ctx context.Context, bookingType, id, token string) Outcome[booking.Record] {
	slug, err := booking.ParseType(bookingType)
	if err != nil {
		return failed[booking.Record](http.StatusBadRequest, msgInvalidType)
	}

	data, err := s.gateway.GetEnvelope(ctx, "/reservations/"+slug.String()+"/"+url.PathEscape(id), token)
	if err != nil {
		s.logger.WarnContext(ctx, "reservation fetch failed", "type", slug, "booking_id", id, "error", err)
		return upstreamFailure[booking.Record](err, msgFetchFailed)
	}

	rec, err := decodeRecord(data)
	if err != nil {
		return failed[booking.Record](http.StatusBadGateway, msgInvalidResponse)
	}
	return succeeded(rec)
}

func (s *serviceImpl) CreateRoomBooking(ctx context.Context, roomData json.RawMessage, token string) Outcome[json.RawMessage] {
	header := http.Header{}
	header.Set("Idempotency-Key", uuid.NewString())

	data, err := RequestWithRetry(ctx, s.retrier, func(ctx context.Context) (json.RawMessage, error) {
		return s.gateway.PostEnvelope(ctx, "/reservations/room", roomData, token, header)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "room booking failed", "error", err)
		return upstreamFailure[json.RawMessage](err, fallbackErrorMessage)
	}

	s.notify(ctx, shared.LevelSuccess, msgRoomBooked)
	return succeeded(data)
}

func (s *serviceImpl) GetRoomBookings(ctx context.Context, roomID, token string) Outcome[json.RawMessage] {
	path := "/reservations/room/" + url.PathEscape(roomID) + "/bookings"
	data, err := RequestWithRetry(ctx, s.retrier, func(ctx context.Context) (json.RawMessage, error) {
		return s.gateway.GetEnvelope(ctx, path, token)
	})
	if err != nil {
		return upstreamFailure[json.RawMessage](err, fallbackErrorMessage)
	}
	return succeeded(data)
}

func (s *serviceImpl) Confirm(ctx context.Context, initial booking.Record, token string) Outcome[booking.Record] {
	id := initial.Identifier()
	if id == "" {
		return failed[booking.Record](http.StatusBadRequest, msgNoBookingID)
	}

	slug, err := booking.ResolveType(initial)
	if err != nil {
		s.logger.WarnContext(ctx, "cannot resolve booking type for confirmation", "booking_id", id, "error", err)
		return failed[booking.Record](http.StatusBadRequest, msgInvalidType)
	}

	fetched := s.FetchReservationByID(ctx, slug.String(), id, token)
	if !fetched.OK() {
		return fetched
	}

	merged, err := booking.Merge(initial, *fetched.Data)
	if err != nil {
		s.logger.ErrorContext(ctx, "merge confirmation record", "booking_id", id, "error", err)
		return failed[booking.Record](http.StatusBadGateway, msgInvalidResponse)
	}
	if merged.Type == "" {
		merged.Type = slug.String()
	}
	return succeeded(merged)
}

func (s *serviceImpl) notify(ctx context.Context, level shared.Level, msg string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, shared.Notification{Level: level, Message: msg, At: s.clock.Now()})
}

func decodeRecord(data json.RawMessage) (booking.Record, error) {
	var rec booking.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return booking.Record{}, errs.Wrap(err, "decode reservation record")
	}
	return rec, nil
}
