package heuristic_test

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"tripdeck/constants"
	"tripdeck/internal/extract"
	"tripdeck/internal/extract/heuristic"
)

var testClock = func() time.Time {
	return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func newExtractor() *heuristic.Extractor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return heuristic.New(logger, heuristic.WithClock(testClock))
}

const hotelTextEN = `Booking Confirmation
Hotel: Grand Plaza
Booking reference: HTL-9981
Check-in: 2025-07-10
Check-out: 2025-07-13
Room type: Double room
Guests: 2
Address: Storgatan 1, Malmö`

func TestExtract_HotelEnglish(t *testing.T) {
	d, err := newExtractor().ExtractDraft(context.Background(), hotelTextEN, "booking.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.Type != constants.BookingHotel {
		t.Fatalf("type: %q", d.Type)
	}
	if d.Title != "Hotel Grand Plaza" {
		t.Fatalf("title: %q", d.Title)
	}
	if d.ConfirmationNumber != "HTL-9981" {
		t.Fatalf("confirmation: %q", d.ConfirmationNumber)
	}
	if d.StartDate != "2025-07-10" {
		t.Fatalf("startDate: %q", d.StartDate)
	}
	if d.EndDate != "2025-07-13" {
		t.Fatalf("endDate: %q", d.EndDate)
	}
}

func TestExtract_FlightSwedish(t *testing.T) {
	text := `Flygbiljett
Bekräftelsenummer: ABC123
Från Stockholm till Göteborg
Avresa: 15 juni 2025
Flygbolag: SAS
Flightnummer: SK1429`

	d, err := newExtractor().ExtractDraft(context.Background(), text, "biljett.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.Type != constants.BookingFlight {
		t.Fatalf("type: %q", d.Type)
	}
	if d.From != "Stockholm" || d.To != "Göteborg" {
		t.Fatalf("endpoints: from=%q to=%q", d.From, d.To)
	}
	if d.Title != "Flight to Göteborg" {
		t.Fatalf("title: %q", d.Title)
	}
	if d.Location != "Stockholm to Göteborg" {
		t.Fatalf("location: %q", d.Location)
	}
	if d.ConfirmationNumber != "ABC123" {
		t.Fatalf("confirmation: %q", d.ConfirmationNumber)
	}
	if d.Airline != "SAS" || d.FlightNumber != "SK1429" {
		t.Fatalf("airline=%q flightNumber=%q", d.Airline, d.FlightNumber)
	}
	if d.StartDate != "2025-06-15" {
		t.Fatalf("startDate: %q", d.StartDate)
	}
	if d.EndDate != "" {
		t.Fatalf("flight grew a default end date: %q", d.EndDate)
	}
}

func TestExtract_FlightAirportCodes(t *testing.T) {
	text := `Flight confirmation
Route: ARN - CDG
Departure: 2025-06-01
Departure time: 08:30
Arrival time: 11:05`

	d, err := newExtractor().ExtractDraft(context.Background(), text, "e-ticket.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.From != "ARN" || d.To != "CDG" {
		t.Fatalf("endpoints: from=%q to=%q", d.From, d.To)
	}
	if d.DepartureTime != "08:30" {
		t.Fatalf("departureTime: %q", d.DepartureTime)
	}
	if d.ArrivalTime != "11:05" {
		t.Fatalf("arrivalTime: %q", d.ArrivalTime)
	}
	if d.StartDate != "2025-06-01" {
		t.Fatalf("startDate: %q", d.StartDate)
	}
	if d.FlightNumber != "" {
		t.Fatalf("heading leaked into flightNumber: %q", d.FlightNumber)
	}
	if d.Description != "" {
		t.Fatalf("description: %q", d.Description)
	}
}

// A document date without a time of day must stay clockless so normalization
// never turns midnight into departure and arrival times.
func TestExtract_DateOnlyFlightKeepsTimesAbsent(t *testing.T) {
	text := `Flight itinerary
Departure: 2025-06-01
Arrival: 2025-06-02`

	d, err := newExtractor().ExtractDraft(context.Background(), text, "itinerary.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.StartDate != "2025-06-01" {
		t.Fatalf("startDate: %q", d.StartDate)
	}
	if d.EndDate != "2025-06-02" {
		t.Fatalf("endDate: %q", d.EndDate)
	}
	n := extract.Normalize(d)
	if n.DepartureTime != "" {
		t.Fatalf("departureTime fabricated from a clockless date: %q", n.DepartureTime)
	}
	if n.ArrivalTime != "" {
		t.Fatalf("arrivalTime fabricated from a clockless date: %q", n.ArrivalTime)
	}
}

// Flight numbers are only accepted when the labeled value looks like one.
func TestExtract_FlightNumberShape(t *testing.T) {
	text := `Flight booking
Flight number: see attached itinerary
Flight no: SK 1429`

	d, err := newExtractor().ExtractDraft(context.Background(), text, "booking.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.FlightNumber != "" {
		t.Fatalf("prose accepted as flight number: %q", d.FlightNumber)
	}

	d, err = newExtractor().ExtractDraft(context.Background(), "Flight booking\nFlight no: SK 1429", "booking.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.FlightNumber != "SK 1429" {
		t.Fatalf("flightNumber: %q", d.FlightNumber)
	}
}

// Label-guided dates beat positional order even when a stray date appears
// earlier in the document.
func TestExtract_LabeledDatesBeatPositional(t *testing.T) {
	text := `Hotel voucher
Issued: 2025-01-05
Hotel: Seaside Inn
Check-in: 2025-07-10
Check-out: 2025-07-12`

	d, err := newExtractor().ExtractDraft(context.Background(), text, "voucher.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.StartDate != "2025-07-10" {
		t.Fatalf("startDate picked positional over labeled: %q", d.StartDate)
	}
	if d.EndDate != "2025-07-12" {
		t.Fatalf("endDate: %q", d.EndDate)
	}
}

func TestExtract_HotelDefaultStay(t *testing.T) {
	text := `Hotell Nordica
Incheckning: 2025-08-01`

	d, err := newExtractor().ExtractDraft(context.Background(), text, "hotell.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.Type != constants.BookingHotel {
		t.Fatalf("type: %q", d.Type)
	}
	if d.StartDate != "2025-08-01" {
		t.Fatalf("startDate: %q", d.StartDate)
	}
	// No end date in the text: hotels default to a three night stay.
	if d.EndDate != "2025-08-04" {
		t.Fatalf("endDate: %q", d.EndDate)
	}
}

func TestExtract_CarDefaultSpan(t *testing.T) {
	text := `Car rental agreement
Pick-up: 2025-05-02
Vehicle: Volvo V60`

	d, err := newExtractor().ExtractDraft(context.Background(), text, "rental.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.Type != constants.BookingCar {
		t.Fatalf("type: %q", d.Type)
	}
	if d.StartDate != "2025-05-02" {
		t.Fatalf("startDate: %q", d.StartDate)
	}
	if d.EndDate != "2025-05-03" {
		t.Fatalf("endDate: %q", d.EndDate)
	}
}

func TestExtract_EmptyTextDefaults(t *testing.T) {
	d, err := newExtractor().ExtractDraft(context.Background(), "", "scan.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.Type != constants.BookingOther {
		t.Fatalf("type: %q", d.Type)
	}
	if d.Title != "Travel Booking" {
		t.Fatalf("title: %q", d.Title)
	}
	if d.StartDate != "2025-06-01T12:00:00" {
		t.Fatalf("startDate: %q", d.StartDate)
	}
	if d.ConfirmationNumber != "" {
		t.Fatalf("empty text produced a confirmation: %q", d.ConfirmationNumber)
	}
}

func TestExtract_FilenameClassifiesWhenTextDoesNot(t *testing.T) {
	d, err := newExtractor().ExtractDraft(context.Background(), "no useful words here", "flight_AB123.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.Type != constants.BookingFlight {
		t.Fatalf("type from filename: %q", d.Type)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := newExtractor()
	a, err := e.ExtractDraft(context.Background(), hotelTextEN, "booking.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := e.ExtractDraft(context.Background(), hotelTextEN, "booking.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same input produced different drafts:\na: %+v\nb: %+v", a, b)
	}
}
