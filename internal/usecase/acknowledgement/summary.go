package acknowledgement

import (
	"fmt"
	"strconv"
	"strings"

	"hotelfront/internal/domain/booking"
	"hotelfront/internal/pkg/patch"
)

const (
	notAvailable = "N/A"
	dateLayout   = "02 Jan 2006"
)

type RowKind int

const (
	RowField RowKind = iota
	RowHeading
	RowItem
)

// Row is one line of the BOOKING SUMMARY block.
type Row struct {
	Kind  RowKind `json:"kind"`
	Label string  `json:"label,omitempty"`
	Value string  `json:"value,omitempty"`
}

func (r Row) String() string {
	switch r.Kind {
	case RowHeading:
		return r.Label + ":"
	case RowItem:
		return r.Value
	default:
		return r.Label + ": " + r.Value
	}
}

// Summary lists the rows printed for a booking. It never fails: absent values
// are rendered as N/A.
func Summary(rec booking.Record, t booking.Type) []Row {
	guest := booking.GuestInfo{}
	if rec.GuestInfo != nil {
		guest = *rec.GuestInfo
	}

	rows := []Row{
		field("Booking Type", t.String()),
		field("Booking ID", patch.FirstNonEmpty(rec.ID, rec.BookingID)),
		field("Guest Name", guest.Name),
		field("Phone", guest.PhoneNumber),
		field("Email", guest.Email),
	}

	switch t {
	case booking.TypeAccommodation:
		rows = append(rows,
			field("Check-in", FormatDate(rec.ArrivalDate)),
			field("Check-out", FormatDate(rec.DepartureDate)),
		)
		rows = append(rows, roomRows(rec.SelectedRoomTypes)...)
		rows = append(rows,
			field("Number of Guests", guestsValue(rec)),
			field("Number of Nights", intValue(rec.Nights)),
		)
		if strings.TrimSpace(rec.SpecialRequests) != "" {
			rows = append(rows, field("Special Requests", rec.SpecialRequests))
		}
	case booking.TypeRestaurant:
		rows = append(rows,
			field("Reservation Date", FormatDate(rec.Date)),
			field("Time Slot", rec.TimeSlot),
			field("Number of Diners", intValue(rec.NoOfDiners)),
		)
	case booking.TypeMeeting:
		rows = append(rows,
			field("Event", rec.TypeOfReservation),
			field("Start Date", FormatDate(rec.ReservationDate)),
			field("End Date", FormatDate(rec.ReservationEndDate)),
			field("Guests", intValue(rec.NumberOfGuests)),
			field("Rooms", intValue(rec.NumberOfRooms)),
		)
	}
	return rows
}

// FormatGuests renders "2 Adults, 1 Child". Children are omitted when zero.
func FormatGuests(adults, children int) string {
	s := fmt.Sprintf("%d %s", adults, plural(adults, "Adult", "Adults"))
	if children > 0 {
		s += fmt.Sprintf(", %d %s", children, plural(children, "Child", "Children"))
	}
	return s
}

// FormatDate prints a stored date as "10 Mar 2025". Unparseable input is
// printed as is.
func FormatDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	d, err := booking.ParseDate(s)
	if err != nil {
		return s
	}
	return d.Format(dateLayout)
}

func roomRows(rooms []booking.RoomSelection) []Row {
	if len(rooms) == 0 {
		return []Row{field("Room Details", "No rooms selected")}
	}
	rows := make([]Row, 0, len(rooms)+1)
	rows = append(rows, Row{Kind: RowHeading, Label: "Room Details"})
	for _, r := range rooms {
		rows = append(rows, Row{
			Kind:  RowItem,
			Value: fmt.Sprintf("• %s: %d %s", r.Type, r.Count, plural(r.Count, "Room", "Rooms")),
		})
	}
	return rows
}

func guestsValue(rec booking.Record) string {
	if rec.TotalAdults == nil {
		return notAvailable
	}
	return FormatGuests(*rec.TotalAdults, patch.Coalesce(rec.TotalChildren, 0))
}

func field(label, value string) Row {
	if strings.TrimSpace(value) == "" {
		value = notAvailable
	}
	return Row{Kind: RowField, Label: label, Value: value}
}

func intValue(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
