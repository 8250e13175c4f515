//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"hotelfront/internal/domain/booking"
	"hotelfront/internal/handler/api"
	reservationmock "hotelfront/internal/mock/reservation"
	"hotelfront/internal/pkg/ptr"
	"hotelfront/internal/testutil"
	"hotelfront/internal/testutil/builder"
	"hotelfront/internal/testutil/httptest"
	"hotelfront/internal/usecase/reservation"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockReservations *reservationmock.MockService
	handler          *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = reservationmock.NewMockService(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockReservations)

	s.router.POST("/reservations/room", s.handler.CreateRoomBooking)
	s.router.GET("/reservations/room/:id/bookings", s.handler.GetRoomBookings)
	s.router.POST("/reservations/:type", s.handler.CreateReservation)
	s.router.GET("/reservations/:type/:id", s.handler.GetReservation)
	s.router.POST("/confirmations", s.handler.Confirm)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func ok[T any](v T) reservation.Outcome[T] {
	return reservation.Outcome[T]{Data: &v}
}

func fail[T any](status int, msg string) reservation.Outcome[T] {
	return reservation.Outcome[T]{Error: &msg, Status: status}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	reqBody := builder.NewBookingBuilder().BuildRequest()
	created := builder.NewBookingBuilder().BuildRecord()

	s.Run("success: returns 201 with the created record", func() {
		s.mockReservations.EXPECT().
			CreateReservation(gomock.Any(), "accommodation", reqBody, "").
			DoAndReturn(func(ctx context.Context, _ string, _ booking.Record, _ string) reservation.Outcome[booking.Record] {
				s.NoError(ctx.Err())
				return ok(created)
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/accommodation", reqBody, "")

		var body reservation.Outcome[booking.Record]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Nil(body.Error)
		s.Require().NotNil(body.Data)
		if diff := cmp.Diff(created, *body.Data); diff != "" {
			s.T().Errorf("record mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: the path type is passed through untouched", func() {
		s.mockReservations.EXPECT().
			CreateReservation(gomock.Any(), "ACCOMMODATION", gomock.Any(), "").
			Return(ok(created)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/ACCOMMODATION", reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: outcome failures keep their status and message", func() {
		testCases := []struct {
			name    string
			outcome reservation.Outcome[booking.Record]
			status  int
			message string
		}{
			{
				name:    "validation",
				outcome: fail[booking.Record](http.StatusUnprocessableEntity, "At least one adult is required"),
				status:  http.StatusUnprocessableEntity,
				message: "At least one adult is required",
			},
			{
				name:    "invalid type",
				outcome: fail[booking.Record](http.StatusBadRequest, "Invalid booking type"),
				status:  http.StatusBadRequest,
				message: "Invalid booking type",
			},
			{
				name:    "upstream rejection",
				outcome: fail[booking.Record](http.StatusBadGateway, "Room unavailable"),
				status:  http.StatusBadGateway,
				message: "Room unavailable",
			},
			{
				name:    "missing status defaults to bad gateway",
				outcome: fail[booking.Record](0, "Request failed"),
				status:  http.StatusBadGateway,
				message: "Request failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReservations.EXPECT().
					CreateReservation(gomock.Any(), "accommodation", gomock.Any(), "").
					Return(tc.outcome).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/accommodation", reqBody, "")
				httptest.AssertOutcomeError(s.T(), rec, tc.status, tc.message)
			})
		}
	})

	s.Run("success: undeclared form fields reach the usecase and the response", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("occasion", "birthday"))
		echoed := created
		echoed.Extra = map[string]json.RawMessage{"paymentStatus": json.RawMessage(`"unpaid"`)}

		s.mockReservations.EXPECT().
			CreateReservation(gomock.Any(), "restaurant", gomock.Any(), "").
			DoAndReturn(func(_ context.Context, _ string, form booking.Record, _ string) reservation.Outcome[booking.Record] {
				s.JSONEq(`"birthday"`, string(form.Extra["occasion"]))
				return ok(echoed)
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/restaurant", body, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		var raw struct {
			Data map[string]json.RawMessage `json:"data"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
		s.JSONEq(`"unpaid"`, string(raw.Data["paymentStatus"]))
	})

	s.Run("error: malformed body is rejected before the usecase", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("totalAdults", "two"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/accommodation", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("success: returns the stored record", func() {
		stored := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Type = booking.TypeRestaurant }).BuildRecord()
		s.mockReservations.EXPECT().FetchReservationByID(gomock.Any(), "restaurant", "abc", "").
			Return(ok(stored)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/restaurant/abc", nil, "")

		var body reservation.Outcome[booking.Record]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Data)
		s.Equal(ptr.Of(4), body.Data.NoOfDiners)
	})

	s.Run("error: not found upstream", func() {
		s.mockReservations.EXPECT().FetchReservationByID(gomock.Any(), "meeting", "nope", "").
			Return(fail[booking.Record](http.StatusNotFound, "Reservation not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/meeting/nope", nil, "")
		httptest.AssertOutcomeError(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestRoomBookings() {
	s.Run("success: forwards the raw payload", func() {
		payload := map[string]any{"roomId": "r1", "checkIn": "2025-03-10"}
		s.mockReservations.EXPECT().CreateRoomBooking(gomock.Any(), gomock.Any(), "").
			DoAndReturn(func(_ context.Context, raw json.RawMessage, _ string) reservation.Outcome[json.RawMessage] {
				s.JSONEq(`{"roomId":"r1","checkIn":"2025-03-10"}`, string(raw))
				return ok(json.RawMessage(`{"_id":"rb1"}`))
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/room", payload, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		s.JSONEq(`{"data":{"_id":"rb1"},"error":null}`, rec.Body.String())
	})

	s.Run("success: lists bookings for a room", func() {
		s.mockReservations.EXPECT().GetRoomBookings(gomock.Any(), "r1", "").
			Return(ok(json.RawMessage(`[]`))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/room/r1/bookings", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"data":[],"error":null}`, rec.Body.String())
	})
}

func (s *ReservationHandlerTestSuite) TestConfirm() {
	initial := builder.NewBookingBuilder().BuildRecord()

	s.Run("success: returns the merged record", func() {
		merged := initial
		merged.Status = "pending"
		s.mockReservations.EXPECT().Confirm(gomock.Any(), initial, "").Return(ok(merged)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/confirmations", initial, "")

		var body reservation.Outcome[booking.Record]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Data)
		s.Equal("pending", body.Data.Status)
	})

	s.Run("error: missing id", func() {
		s.mockReservations.EXPECT().Confirm(gomock.Any(), gomock.Any(), "").
			Return(fail[booking.Record](http.StatusBadRequest, "No booking ID found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/confirmations", booking.Record{}, "")
		httptest.AssertOutcomeError(s.T(), rec, http.StatusBadRequest, "No booking ID found")
	})
}
