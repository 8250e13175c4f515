package booking

import (
	"hotelfront/internal/pkg/errs"
)

// ResolveType prefers the explicit type discriminant. Records written before
// the discriminant existed fall back to inferTypeFromShape.
func ResolveType(r Record) (Type, error) {
	if r.Type != "" {
		return ParseType(r.Type)
	}
	if t, err := ParseType(r.TypeOfReservation); err == nil {
		return t, nil
	}
	if t, ok := inferTypeFromShape(r); ok {
		return t, nil
	}
	return "", errs.Mark(errs.New("booking type could not be determined"), errs.ErrUnknownBookingType)
}

// inferTypeFromShape is a compatibility shim for legacy records that carry no
// discriminant. Accommodation fields win over restaurant fields, which win
// over meeting fields.
func inferTypeFromShape(r Record) (Type, bool) {
	switch {
	case len(r.SelectedRoomTypes) > 0 || r.ArrivalDate != "" || r.DepartureDate != "" || r.Nights != nil:
		return TypeAccommodation, true
	case r.TimeSlot != "" || r.NoOfDiners != nil || r.Date != "":
		return TypeRestaurant, true
	case r.ReservationDate != "" || r.ReservationEndDate != "" || r.NumberOfRooms != nil || r.NumberOfGuests != nil:
		return TypeMeeting, true
	default:
		return "", false
	}
}
