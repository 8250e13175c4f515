package booking

import "encoding/json"

type GuestInfo struct {
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
}

type RoomSelection struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Record is both the outgoing reservation request and the server's echo of it.
// Server-assigned fields (ID, Status, timestamps) are empty on requests.
type Record struct {
	ID        string `json:"_id,omitempty"`
	BookingID string `json:"bookingId,omitempty"`
	Type      string `json:"type,omitempty"`
	Status    string `json:"status,omitempty"`

	// For meetings this carries the event kind, for the others the booking type.
	TypeOfReservation string     `json:"typeOfReservation,omitempty"`
	GuestInfo         *GuestInfo `json:"guestInfo,omitempty"`

	// accommodation
	ArrivalDate       string          `json:"arrivalDate,omitempty"`
	DepartureDate     string          `json:"departureDate,omitempty"`
	CheckInTime       string          `json:"checkInTime,omitempty"`
	CheckOutTime      string          `json:"checkOutTime,omitempty"`
	Nights            *int            `json:"nights,omitempty"`
	SelectedRoomTypes []RoomSelection `json:"selectedRoomTypes,omitempty"`
	TotalAdults       *int            `json:"totalAdults,omitempty"`
	TotalChildren     *int            `json:"totalChildren,omitempty"`
	SpecialRequests   string          `json:"specialRequests,omitempty"`

	// restaurant
	Date       string `json:"date,omitempty"`
	TimeSlot   string `json:"timeSlot,omitempty"`
	NoOfDiners *int   `json:"noOfDiners,omitempty"`

	// meeting
	ReservationDate    string `json:"reservationDate,omitempty"`
	ReservationEndDate string `json:"reservationEndDate,omitempty"`
	NumberOfGuests     *int   `json:"numberOfGuests,omitempty"`
	NumberOfRooms      *int   `json:"numberOfRooms,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`

	// Extra holds every field the form or the backend sent that Record does
	// not declare. It is written back out next to the declared fields.
	Extra map[string]json.RawMessage `json:"-"`
}

// Identifier returns the server id, falling back to the locally echoed bookingId.
func (r Record) Identifier() string {
	if r.ID != "" {
		return r.ID
	}
	return r.BookingID
}
