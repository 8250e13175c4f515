package booking

import (
	"strings"

	"hotelfront/internal/pkg/errs"
)

// Type is the normalized booking-type slug used for routing and labels.
type Type string

const (
	TypeAccommodation Type = "accommodation"
	TypeRestaurant    Type = "restaurant"
	TypeMeeting       Type = "meeting"
)

var AllTypes = []Type{TypeAccommodation, TypeRestaurant, TypeMeeting}

// ParseType folds case and surrounding space. Unknown slugs are rejected.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", errs.Mark(errs.Newf("booking type %q", s), errs.ErrUnknownBookingType)
	}
	return t, nil
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeAccommodation, TypeRestaurant, TypeMeeting:
		return true
	default:
		return false
	}
}

// Upper is the form used in document file names.
func (t Type) Upper() string {
	return strings.ToUpper(string(t))
}

func (t Type) Label() string {
	switch t {
	case TypeAccommodation:
		return "Accommodation"
	case TypeRestaurant:
		return "Restaurant"
	case TypeMeeting:
		return "Meeting"
	default:
		return string(t)
	}
}
