package fallback_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"tripdeck/constants"
	"tripdeck/internal/extract/fallback"
)

var testClock = func() time.Time {
	return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func newClassifier() *fallback.Classifier {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return fallback.New(logger,
		fallback.WithClock(testClock),
		fallback.WithConfirmationGen(func() string { return "PDF-1234" }))
}

func TestClassify_FlightFilename(t *testing.T) {
	d := newClassifier().Classify("flight_AB123.pdf")

	if d.Type != constants.BookingFlight {
		t.Fatalf("type: %q", d.Type)
	}
	if d.Title != "Flight Booking" {
		t.Fatalf("title: %q", d.Title)
	}
	if d.StartDate != "2025-06-01T12:00:00" {
		t.Fatalf("startDate: %q", d.StartDate)
	}
	if d.EndDate != "2025-06-02T12:00:00" {
		t.Fatalf("endDate not one day after start: %q", d.EndDate)
	}
	if !strings.Contains(d.Description, "flight_AB123.pdf") {
		t.Fatalf("description does not name the file: %q", d.Description)
	}
	if d.ConfirmationNumber != "PDF-1234" {
		t.Fatalf("confirmation: %q", d.ConfirmationNumber)
	}
}

func TestClassify_TypeKeywords(t *testing.T) {
	cases := map[string]constants.BookingType{
		"hotell_stockholm.pdf":  constants.BookingHotel,
		"hyrbil_arlanda.pdf":    constants.BookingCar,
		"museum_ticket.pdf":     constants.BookingActivity,
		"dokument.pdf":          constants.BookingOther,
		"FLIGHT-CONFIRM.PDF":    constants.BookingFlight,
		"Boarding_pass_CPH.pdf": constants.BookingFlight,
	}
	for name, want := range cases {
		if d := newClassifier().Classify(name); d.Type != want {
			t.Fatalf("%q: got %q, want %q", name, d.Type, want)
		}
	}
}

func TestClassify_AlwaysPopulated(t *testing.T) {
	d := newClassifier().Classify("x.pdf")
	if d.Title == "" || d.StartDate == "" || d.EndDate == "" || d.ConfirmationNumber == "" || d.Description == "" {
		t.Fatalf("fallback draft has gaps: %+v", d)
	}
	if d.Title != "Travel Booking" {
		t.Fatalf("title for unclassified file: %q", d.Title)
	}
}
