package constants_test

import (
	"testing"

	"tripdeck/constants"
)

func TestCanonicalBookingType(t *testing.T) {
	cases := []struct {
		in    string
		want  constants.BookingType
		known bool
	}{
		{"flight", constants.BookingFlight, true},
		{"  Hotel ", constants.BookingHotel, true},
		{"FLIGHTS", constants.BookingFlight, true},
		{"lodging", constants.BookingHotel, true},
		{"car rental", constants.BookingCar, true},
		{"tour", constants.BookingActivity, true},
		{"other", constants.BookingOther, true},
		{"submarine", constants.BookingOther, false},
		{"", constants.BookingOther, false},
	}
	for _, c := range cases {
		got, known := constants.CanonicalBookingType(c.in)
		if got != c.want || known != c.known {
			t.Fatalf("%q: got (%q, %v), want (%q, %v)", c.in, got, known, c.want, c.known)
		}
	}
}

func TestDefaultTitle(t *testing.T) {
	cases := map[constants.BookingType]string{
		constants.BookingFlight:   "Flight Booking",
		constants.BookingHotel:    "Hotel Reservation",
		constants.BookingCar:      "Car Rental",
		constants.BookingActivity: "Activity Booking",
		constants.BookingOther:    "Travel Booking",
	}
	for bt, want := range cases {
		if got := constants.DefaultTitle(bt); got != want {
			t.Fatalf("%q: got %q, want %q", bt, got, want)
		}
	}
}

func TestIsPDFUpload(t *testing.T) {
	cases := []struct {
		contentType, filename string
		want                  bool
	}{
		{"application/pdf", "x.pdf", true},
		{"application/pdf; charset=binary", "x.pdf", true},
		{"", "booking.PDF", true},
		{"application/octet-stream", "booking.pdf", true},
		{"text/plain", "x.pdf", false},
		{"", "notes.txt", false},
		{"application/octet-stream", "archive.zip", false},
	}
	for _, c := range cases {
		if got := constants.IsPDFUpload(c.contentType, c.filename); got != c.want {
			t.Fatalf("(%q, %q): got %v, want %v", c.contentType, c.filename, got, c.want)
		}
	}
}
