package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"hotelfront/internal/domain/booking"
	"hotelfront/internal/handler/httperr"
	"hotelfront/internal/handler/middleware"
	"hotelfront/internal/usecase/reservation"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservations reservation.Service
}

func NewReservationHandler(reservationService reservation.Service) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservationService,
	}
}

// @Summary Create reservation
// @Description Submits a booking with retries. Accommodation requests are validated and normalized first.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "accommodation | restaurant | meeting"
// @Param request body booking.Record true "Booking form"
// @Success 201 {object} reservation.Outcome[booking.Record]
// @Failure 400 {object} reservation.Outcome[booking.Record]
// @Failure 422 {object} reservation.Outcome[booking.Record]
// @Failure 502 {object} reservation.Outcome[booking.Record]
// @Router /api/reservations/{type} [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var form booking.Record
	if err := c.ShouldBindJSON(&form); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	// A submission that has started retrying runs to completion even if the
	// caller goes away.
	ctx := context.WithoutCancel(c.Request.Context())
	outcome := h.reservations.CreateReservation(ctx, c.Param("type"), form, middleware.GetToken(c))
	writeOutcome(c, outcome, http.StatusCreated)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param type path string true "accommodation | restaurant | meeting"
// @Param id path string true "Reservation ID"
// @Success 200 {object} reservation.Outcome[booking.Record]
// @Failure 400 {object} reservation.Outcome[booking.Record]
// @Failure 404 {object} reservation.Outcome[booking.Record]
// @Failure 502 {object} reservation.Outcome[booking.Record]
// @Router /api/reservations/{type}/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	outcome := h.reservations.FetchReservationByID(c.Request.Context(), c.Param("type"), c.Param("id"), middleware.GetToken(c))
	writeOutcome(c, outcome, http.StatusOK)
}

// @Summary Book a room
// @Description Forwards the room booking payload as is
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} reservation.Outcome[json.RawMessage]
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} reservation.Outcome[json.RawMessage]
// @Router /api/reservations/room [post]
func (h *ReservationHandler) CreateRoomBooking(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || !json.Valid(raw) {
		if err == nil {
			err = errors.New("body is not valid JSON")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	outcome := h.reservations.CreateRoomBooking(ctx, raw, middleware.GetToken(c))
	writeOutcome(c, outcome, http.StatusCreated)
}

// @Summary Room bookings
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} reservation.Outcome[json.RawMessage]
// @Failure 502 {object} reservation.Outcome[json.RawMessage]
// @Router /api/reservations/room/{id}/bookings [get]
func (h *ReservationHandler) GetRoomBookings(c *gin.Context) {
	outcome := h.reservations.GetRoomBookings(c.Request.Context(), c.Param("id"), middleware.GetToken(c))
	writeOutcome(c, outcome, http.StatusOK)
}

// @Summary Confirm reservation
// @Description Re-fetches the stored booking and merges it over the submitted one
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body booking.Record true "Booking as known to the client"
// @Success 200 {object} reservation.Outcome[booking.Record]
// @Failure 400 {object} reservation.Outcome[booking.Record]
// @Failure 502 {object} reservation.Outcome[booking.Record]
// @Router /api/confirmations [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	var initial booking.Record
	if err := c.ShouldBindJSON(&initial); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	outcome := h.reservations.Confirm(c.Request.Context(), initial, middleware.GetToken(c))
	writeOutcome(c, outcome, http.StatusOK)
}

func writeOutcome[T any](c *gin.Context, o reservation.Outcome[T], okStatus int) {
	if o.OK() {
		c.JSON(okStatus, o)
		return
	}
	status := o.Status
	if status == 0 {
		status = http.StatusBadGateway
	}
	_ = c.Error(errors.New(o.Message()))
	c.JSON(status, o)
}
