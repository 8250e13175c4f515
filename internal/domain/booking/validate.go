package booking

import (
	"math"
	"strings"
	"time"

	"hotelfront/internal/pkg/errs"
	"hotelfront/internal/pkg/ptr"
)

const (
	DefaultCheckInTime  = "11:00"
	DefaultCheckOutTime = "09:00"
)

var (
	ErrGuestInfoIncomplete = errs.New("Please fill in all guest information")
	ErrRoomTypeMissing     = errs.New("Please select room types for all rooms")
	ErrNoAdults            = errs.New("At least one adult is required")
	ErrInvalidStayDates    = errs.New("Check-out date must be after check-in date")
)

var validationErrors = []error{ErrGuestInfoIncomplete, ErrRoomTypeMissing, ErrNoAdults, ErrInvalidStayDates}

// ValidationMessage returns the form-facing message for a validation failure.
func ValidationMessage(err error) (string, bool) {
	for _, v := range validationErrors {
		if errs.Is(err, v) {
			return v.Error(), true
		}
	}
	return "", false
}

// PrepareAccommodation validates an accommodation request the way the booking
// form does and returns the normalized payload that is sent upstream.
func PrepareAccommodation(r Record) (Record, error) {
	g := r.GuestInfo
	if g == nil || strings.TrimSpace(g.Name) == "" || strings.TrimSpace(g.PhoneNumber) == "" || strings.TrimSpace(g.Email) == "" {
		return Record{}, ErrGuestInfoIncomplete
	}
	if len(r.SelectedRoomTypes) == 0 {
		return Record{}, ErrRoomTypeMissing
	}
	for _, room := range r.SelectedRoomTypes {
		if strings.TrimSpace(room.Type) == "" {
			return Record{}, ErrRoomTypeMissing
		}
	}
	if ptr.Deref(r.TotalAdults) < 1 {
		return Record{}, ErrNoAdults
	}

	nights, err := stayNights(r.ArrivalDate, r.DepartureDate)
	if err != nil {
		return Record{}, err
	}
	if nights < 1 {
		return Record{}, ErrInvalidStayDates
	}

	out := r
	out.Type = string(TypeAccommodation)
	out.TypeOfReservation = string(TypeAccommodation)
	out.Nights = ptr.Of(nights)
	if out.CheckInTime == "" {
		out.CheckInTime = DefaultCheckInTime
	}
	if out.CheckOutTime == "" {
		out.CheckOutTime = DefaultCheckOutTime
	}
	out.SelectedRoomTypes = make([]RoomSelection, len(r.SelectedRoomTypes))
	for i, room := range r.SelectedRoomTypes {
		out.SelectedRoomTypes[i] = RoomSelection{Type: room.Type, Count: max(1, room.Count)}
	}
	out.TotalChildren = ptr.Of(max(0, ptr.Deref(r.TotalChildren)))
	out.GuestInfo = &GuestInfo{
		Name:        strings.TrimSpace(g.Name),
		PhoneNumber: strings.TrimSpace(g.PhoneNumber),
		Email:       strings.ToLower(strings.TrimSpace(g.Email)),
	}
	return out, nil
}

// stayNights counts started days between arrival and departure.
func stayNights(arrival, departure string) (int, error) {
	a, err := ParseDate(arrival)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "arrival date"), ErrInvalidStayDates)
	}
	d, err := ParseDate(departure)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "departure date"), ErrInvalidStayDates)
	}
	return int(math.Ceil(d.Sub(a).Hours() / 24)), nil
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate accepts the ISO forms the booking forms and the backend emit.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
