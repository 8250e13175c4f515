//go:build unit

package booking_test

import (
	"testing"

	"hotelfront/internal/domain/booking"
	"hotelfront/internal/pkg/errs"
	"hotelfront/internal/pkg/ptr"
	"hotelfront/internal/testutil/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		in    string
		want  booking.Type
		errIs error
	}{
		{in: "accommodation", want: booking.TypeAccommodation},
		{in: "ACCOMMODATION", want: booking.TypeAccommodation},
		{in: " Restaurant ", want: booking.TypeRestaurant},
		{in: "Meeting", want: booking.TypeMeeting},
		{in: "spa", errIs: errs.ErrUnknownBookingType},
		{in: "", errIs: errs.ErrUnknownBookingType},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := booking.ParseType(tc.in)
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTypeForms(t *testing.T) {
	assert.Equal(t, "ACCOMMODATION", booking.TypeAccommodation.Upper())
	assert.Equal(t, "Restaurant", booking.TypeRestaurant.Label())
	assert.Equal(t, "meeting", booking.TypeMeeting.String())
	assert.False(t, booking.Type("Meeting").IsValid())
}

func TestResolveType(t *testing.T) {
	t.Run("explicit discriminant wins over shape", func(t *testing.T) {
		r := builder.NewBookingBuilder().BuildRecord()
		r.Type = "Restaurant"
		got, err := booking.ResolveType(r)
		require.NoError(t, err)
		assert.Equal(t, booking.TypeRestaurant, got)
	})

	t.Run("invalid discriminant is rejected", func(t *testing.T) {
		r := builder.NewBookingBuilder().BuildRecord()
		r.Type = "spa"
		_, err := booking.ResolveType(r)
		assert.True(t, errs.Is(err, errs.ErrUnknownBookingType))
	})

	t.Run("typeOfReservation slug is used when no discriminant", func(t *testing.T) {
		r := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.OmitDiscriminator = true }).BuildRecord()
		got, err := booking.ResolveType(r)
		require.NoError(t, err)
		assert.Equal(t, booking.TypeAccommodation, got)
	})

	shapes := []struct {
		name string
		rec  booking.Record
		want booking.Type
	}{
		{name: "rooms imply accommodation", rec: booking.Record{SelectedRoomTypes: []booking.RoomSelection{{Type: "Suite", Count: 1}}}, want: booking.TypeAccommodation},
		{name: "time slot implies restaurant", rec: booking.Record{TimeSlot: "19:00"}, want: booking.TypeRestaurant},
		{name: "diners imply restaurant", rec: booking.Record{NoOfDiners: ptr.Of(2)}, want: booking.TypeRestaurant},
		{name: "event dates imply meeting", rec: booking.Record{TypeOfReservation: "Wedding", ReservationDate: "2025-01-01"}, want: booking.TypeMeeting},
	}
	for _, tc := range shapes {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.ResolveType(tc.rec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("empty record is undeterminable", func(t *testing.T) {
		_, err := booking.ResolveType(booking.Record{GuestInfo: &booking.GuestInfo{Name: "x"}})
		assert.True(t, errs.Is(err, errs.ErrUnknownBookingType))
	})
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "srv", booking.Record{ID: "srv", BookingID: "local"}.Identifier())
	assert.Equal(t, "local", booking.Record{BookingID: "local"}.Identifier())
	assert.Equal(t, "", booking.Record{}.Identifier())
}
