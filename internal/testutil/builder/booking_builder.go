//go:build unit || e2e

package builder

import (
	"hotelfront/internal/domain/booking"
	"hotelfront/internal/pkg/ptr"
)

type BookingBuilder struct {
	ID                string
	Type              booking.Type
	Guest             booking.GuestInfo
	ArrivalDate       string
	DepartureDate     string
	Rooms             []booking.RoomSelection
	Adults            int
	Children          int
	Nights            int
	SpecialRequests   string
	Date              string
	TimeSlot          string
	Diners            int
	Event             string
	ReservationDate   string
	ReservationEnd    string
	MeetingGuests     int
	MeetingRooms      int
	OmitDiscriminator bool
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:   "abc",
		Type: booking.TypeAccommodation,
		Guest: booking.GuestInfo{
			Name:        "Asha Roy",
			PhoneNumber: "9876543210",
			Email:       "asha@example.com",
		},
		ArrivalDate:     "2025-03-10T00:00:00.000Z",
		DepartureDate:   "2025-03-12T00:00:00.000Z",
		Rooms:           []booking.RoomSelection{{Type: "Deluxe", Count: 2}},
		Adults:          2,
		Children:        1,
		Nights:          2,
		Date:            "2025-03-10",
		TimeSlot:        "19:00 - 21:00",
		Diners:          4,
		Event:           "Conference",
		ReservationDate: "2025-04-01",
		ReservationEnd:  "2025-04-02",
		MeetingGuests:   40,
		MeetingRooms:    2,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildRecord() booking.Record {
	guest := b.Guest
	r := booking.Record{
		ID:        b.ID,
		GuestInfo: &guest,
	}
	if !b.OmitDiscriminator {
		r.Type = string(b.Type)
	}

	switch b.Type {
	case booking.TypeAccommodation:
		r.TypeOfReservation = string(booking.TypeAccommodation)
		r.ArrivalDate = b.ArrivalDate
		r.DepartureDate = b.DepartureDate
		r.SelectedRoomTypes = append([]booking.RoomSelection(nil), b.Rooms...)
		r.TotalAdults = ptr.Of(b.Adults)
		r.TotalChildren = ptr.Of(b.Children)
		r.Nights = ptr.Of(b.Nights)
		r.SpecialRequests = b.SpecialRequests
	case booking.TypeRestaurant:
		r.Date = b.Date
		r.TimeSlot = b.TimeSlot
		r.NoOfDiners = ptr.Of(b.Diners)
	case booking.TypeMeeting:
		r.TypeOfReservation = b.Event
		r.ReservationDate = b.ReservationDate
		r.ReservationEndDate = b.ReservationEnd
		r.NumberOfGuests = ptr.Of(b.MeetingGuests)
		r.NumberOfRooms = ptr.Of(b.MeetingRooms)
	}
	return r
}

// BuildRequest is the record as submitted, before the server assigns an id.
func (b *BookingBuilder) BuildRequest() booking.Record {
	r := b.BuildRecord()
	r.ID = ""
	return r
}
