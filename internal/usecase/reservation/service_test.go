//go:build unit

package reservation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"hotelfront/internal/domain/booking"
	"hotelfront/internal/infra/backend"
	reservationmock "hotelfront/internal/mock/reservation"
	sharedmock "hotelfront/internal/mock/shared"
	"hotelfront/internal/pkg/clock"
	"hotelfront/internal/pkg/ptr"
	"hotelfront/internal/testutil/builder"
	"hotelfront/internal/usecase/reservation"
	"hotelfront/internal/usecase/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockGateway  *reservationmock.MockGateway
	mockNotifier *sharedmock.MockNotifier
	clock        *clock.MockClock
	service      reservation.Service
}

func (s *ReservationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = reservationmock.NewMockGateway(s.mockCtrl)
	s.mockNotifier = sharedmock.NewMockNotifier(s.mockCtrl)
	s.clock = clock.NewMockClock(now)

	retrier := reservation.NewRetrier(reservation.DefaultRetryConfig(), s.clock, s.mockNotifier, discardLogger())
	s.service = reservation.NewService(s.mockGateway, retrier, s.mockNotifier, s.clock, discardLogger())
}

func (s *ReservationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationServiceSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}

func successToast(msg string) gomock.Matcher {
	return gomock.Cond(func(n shared.Notification) bool {
		return n.Level == shared.LevelSuccess && n.Message == msg && n.At.Equal(now)
	})
}

func mustJSON(s *ReservationServiceTestSuite, v any) json.RawMessage {
	raw, err := json.Marshal(v)
	s.Require().NoError(err)
	return raw
}

func (s *ReservationServiceTestSuite) TestCreateReservation() {
	ctx := context.Background()

	s.Run("accommodation is normalised and posted to its slug", func() {
		form := builder.NewBookingBuilder().BuildRequest()
		created := builder.NewBookingBuilder().BuildRecord()

		s.mockGateway.EXPECT().
			PostEnvelope(gomock.Any(), "/reservations/accommodation", gomock.Any(), "tok", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, body any, _ string, header http.Header) (json.RawMessage, error) {
				payload, ok := body.(booking.Record)
				s.Require().True(ok)
				s.Equal("accommodation", payload.Type)
				s.Equal(booking.DefaultCheckInTime, payload.CheckInTime)
				s.Equal(booking.DefaultCheckOutTime, payload.CheckOutTime)
				s.Equal(ptr.Of(2), payload.Nights)
				s.NotEmpty(header.Get("Idempotency-Key"))
				return mustJSON(s, created), nil
			}).Times(1)
		s.mockNotifier.EXPECT().Notify(gomock.Any(), successToast("accommodation reservation created!")).Times(1)

		out := s.service.CreateReservation(ctx, "ACCOMMODATION", form, "tok")

		s.True(out.OK())
		s.Require().NotNil(out.Data)
		s.Equal("abc", out.Data.ID)
	})

	s.Run("restaurant body is forwarded without accommodation rules", func() {
		form := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Type = booking.TypeRestaurant
		}).BuildRequest()

		s.mockGateway.EXPECT().
			PostEnvelope(gomock.Any(), "/reservations/restaurant", gomock.Any(), "", gomock.Any()).
			Return(json.RawMessage(`{"_id":"r9","type":"restaurant"}`), nil).Times(1)
		s.mockNotifier.EXPECT().Notify(gomock.Any(), successToast("restaurant reservation created!")).Times(1)

		out := s.service.CreateReservation(ctx, "restaurant", form, "")

		s.True(out.OK())
		s.Equal("r9", out.Data.ID)
	})

	s.Run("undeclared form fields are forwarded upstream", func() {
		form := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Type = booking.TypeRestaurant
		}).BuildRequest()
		form.Extra = map[string]json.RawMessage{"occasion": json.RawMessage(`"birthday"`)}

		s.mockGateway.EXPECT().
			PostEnvelope(gomock.Any(), "/reservations/restaurant", gomock.Any(), "", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, body any, _ string, _ http.Header) (json.RawMessage, error) {
				raw := mustJSON(s, body)
				var sent map[string]json.RawMessage
				s.Require().NoError(json.Unmarshal(raw, &sent))
				s.JSONEq(`"birthday"`, string(sent["occasion"]))
				return json.RawMessage(`{"_id":"r9","occasion":"birthday","paymentStatus":"unpaid"}`), nil
			}).Times(1)
		s.mockNotifier.EXPECT().Notify(gomock.Any(), successToast("restaurant reservation created!")).Times(1)

		out := s.service.CreateReservation(ctx, "restaurant", form, "")

		s.Require().True(out.OK())
		s.JSONEq(`"unpaid"`, string(out.Data.Extra["paymentStatus"]))
	})

	s.Run("validation failure never reaches the backend", func() {
		form := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Adults = 0 }).BuildRequest()
		s.mockNotifier.EXPECT().Notify(gomock.Any(), errorToast("At least one adult is required")).Times(1)

		out := s.service.CreateReservation(ctx, "accommodation", form, "")

		s.False(out.OK())
		s.Equal("At least one adult is required", out.Message())
		s.Equal(http.StatusUnprocessableEntity, out.Status)
	})

	s.Run("unknown type", func() {
		s.mockNotifier.EXPECT().Notify(gomock.Any(), errorToast("Invalid booking type")).Times(1)

		out := s.service.CreateReservation(ctx, "spa", booking.Record{}, "")

		s.Equal("Invalid booking type", out.Message())
		s.Equal(http.StatusBadRequest, out.Status)
	})

	s.Run("retries reuse one idempotency key and toast once", func() {
		form := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Type = booking.TypeMeeting
		}).BuildRequest()

		var keys []string
		s.mockGateway.EXPECT().
			PostEnvelope(gomock.Any(), "/reservations/meeting", gomock.Any(), "", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ any, _ string, header http.Header) (json.RawMessage, error) {
				keys = append(keys, header.Get("Idempotency-Key"))
				return nil, &backend.APIError{Status: http.StatusOK, Message: "Room unavailable"}
			}).Times(3)
		s.mockNotifier.EXPECT().Notify(gomock.Any(), errorToast("Room unavailable")).Times(1)

		out := s.service.CreateReservation(ctx, "meeting", form, "")

		s.Equal("Room unavailable", out.Message())
		s.Equal(http.StatusBadGateway, out.Status)
		s.Require().Len(keys, 3)
		s.Equal(keys[0], keys[1])
		s.Equal(keys[1], keys[2])
	})

	s.Run("client error status is kept", func() {
		form := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Type = booking.TypeRestaurant
		}).BuildRequest()

		s.mockGateway.EXPECT().PostEnvelope(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &backend.APIError{Status: http.StatusConflict, Message: "Slot taken"}).Times(1)
		s.mockNotifier.EXPECT().Notify(gomock.Any(), errorToast("Slot taken")).Times(1)

		out := s.service.CreateReservation(ctx, "restaurant", form, "")

		s.Equal(http.StatusConflict, out.Status)
		s.Equal("Slot taken", out.Message())
	})

	s.Run("undecodable response", func() {
		form := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Type = booking.TypeRestaurant
		}).BuildRequest()

		s.mockGateway.EXPECT().PostEnvelope(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`"created"`), nil).Times(1)

		out := s.service.CreateReservation(ctx, "restaurant", form, "")

		s.Equal("Invalid response from server", out.Message())
		s.Equal(http.StatusBadGateway, out.Status)
	})
}

func (s *ReservationServiceTestSuite) TestFetchReservationByID() {
	ctx := context.Background()

	s.Run("id is escaped into the path", func() {
		s.mockGateway.EXPECT().GetEnvelope(gomock.Any(), "/reservations/meeting/a%2Fb", "").
			Return(json.RawMessage(`{"_id":"a/b"}`), nil).Times(1)

		out := s.service.FetchReservationByID(ctx, "Meeting", "a/b", "")

		s.True(out.OK())
		s.Equal("a/b", out.Data.ID)
	})

	s.Run("not found keeps 404 and uses fallback message", func() {
		s.mockGateway.EXPECT().GetEnvelope(gomock.Any(), "/reservations/restaurant/x", "").
			Return(nil, &backend.APIError{Status: http.StatusNotFound}).Times(1)

		out := s.service.FetchReservationByID(ctx, "restaurant", "x", "")

		s.Equal(http.StatusNotFound, out.Status)
		s.Equal("Failed to fetch booking details", out.Message())
	})
}

func (s *ReservationServiceTestSuite) TestRoomBookings() {
	ctx := context.Background()

	s.Run("create posts raw json", func() {
		raw := json.RawMessage(`{"roomId":"r1"}`)
		s.mockGateway.EXPECT().PostEnvelope(gomock.Any(), "/reservations/room", raw, "", gomock.Any()).
			Return(json.RawMessage(`{"_id":"rb1"}`), nil).Times(1)
		s.mockNotifier.EXPECT().Notify(gomock.Any(), successToast("Room booked successfully!")).Times(1)

		out := s.service.CreateRoomBooking(ctx, raw, "")

		s.True(out.OK())
		s.JSONEq(`{"_id":"rb1"}`, string(*out.Data))
	})

	s.Run("list bookings for a room", func() {
		s.mockGateway.EXPECT().GetEnvelope(gomock.Any(), "/reservations/room/r1/bookings", "tok").
			Return(json.RawMessage(`[]`), nil).Times(1)

		out := s.service.GetRoomBookings(ctx, "r1", "tok")

		s.True(out.OK())
		s.Equal(`[]`, string(*out.Data))
	})
}

func (s *ReservationServiceTestSuite) TestConfirm() {
	ctx := context.Background()

	s.Run("server fields overlay the local record", func() {
		initial := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SpecialRequests = "Late check-in"
		}).BuildRecord()

		s.mockGateway.EXPECT().GetEnvelope(gomock.Any(), "/reservations/accommodation/abc", "").
			Return(json.RawMessage(`{"_id":"abc","status":"pending","createdAt":"2025-03-09T10:00:00Z"}`), nil).Times(1)

		out := s.service.Confirm(ctx, initial, "")

		s.Require().True(out.OK())
		s.Equal("pending", out.Data.Status)
		s.Equal("Late check-in", out.Data.SpecialRequests)
		s.Equal(initial.SelectedRoomTypes, out.Data.SelectedRoomTypes)
		s.Equal("accommodation", out.Data.Type)
	})

	s.Run("undeclared fields of both records are kept", func() {
		initial := builder.NewBookingBuilder().BuildRecord()
		initial.Extra = map[string]json.RawMessage{"occasion": json.RawMessage(`"anniversary"`)}

		s.mockGateway.EXPECT().GetEnvelope(gomock.Any(), "/reservations/accommodation/abc", "").
			Return(json.RawMessage(`{"_id":"abc","status":"pending","paymentStatus":"unpaid"}`), nil).Times(1)

		out := s.service.Confirm(ctx, initial, "")

		s.Require().True(out.OK())
		s.JSONEq(`"anniversary"`, string(out.Data.Extra["occasion"]))
		s.JSONEq(`"unpaid"`, string(out.Data.Extra["paymentStatus"]))
	})

	s.Run("type is inferred when the discriminator is missing", func() {
		initial := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Type = booking.TypeRestaurant
			b.OmitDiscriminator = true
		}).BuildRecord()

		s.mockGateway.EXPECT().GetEnvelope(gomock.Any(), "/reservations/restaurant/abc", "").
			Return(json.RawMessage(`{"_id":"abc"}`), nil).Times(1)

		out := s.service.Confirm(ctx, initial, "")

		s.Require().True(out.OK())
		s.Equal("restaurant", out.Data.Type)
	})

	s.Run("missing id", func() {
		out := s.service.Confirm(ctx, booking.Record{}, "")

		s.Equal("No booking ID found", out.Message())
		s.Equal(http.StatusBadRequest, out.Status)
	})
}
