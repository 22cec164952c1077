package export_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"tripdeck/constants"
	"tripdeck/internal/common"
	"tripdeck/internal/entity"
	"tripdeck/internal/export"
	"tripdeck/internal/repository"
)

func setup(t *testing.T) (*export.Service, repository.TripRepository, repository.BookingRepository) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := repository.Open(context.Background(), repository.Config{
		DSN:         ":memory:",
		DialTimeout: 2 * time.Second,
	}, logger)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { repository.Close(db, logger) })
	trips := repository.NewTripRepository(db)
	bookings := repository.NewBookingRepository(db)
	return export.NewService(trips, bookings, logger), trips, bookings
}

func TestExportTripXLSX(t *testing.T) {
	svc, trips, bookings := setup(t)
	ctx := context.Background()

	trip := &entity.Trip{
		ID: uuid.New(), Title: "Paris", Destination: "Paris",
		StartDate: "2025-06-01", EndDate: "2025-06-08",
	}
	if err := trips.Create(ctx, trip); err != nil {
		t.Fatalf("create trip: %v", err)
	}
	if err := bookings.Create(ctx, &entity.Booking{
		ID: uuid.New(), TripID: trip.ID,
		Type: constants.BookingFlight, Title: "Flight to Paris",
		StartDate: "2025-06-01T08:30:00", Location: "Stockholm to Paris",
		ConfirmationNumber: "AB123", Airline: "SAS", FlightNumber: "SK1429",
	}); err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if err := bookings.Create(ctx, &entity.Booking{
		ID: uuid.New(), TripID: trip.ID,
		Type: constants.BookingHotel, Title: "Hotel Grand",
		StartDate: "2025-06-01T15:00:00", EndDate: "2025-06-08T11:00:00",
		ConfirmationNumber: "HTL-1",
	}); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	data, err := svc.ExportTripXLSX(ctx, trip.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Itinerary")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Type" || rows[0][1] != "Title" {
		t.Fatalf("header row: %v", rows[0])
	}
	if rows[1][0] != "flight" || rows[1][1] != "Flight to Paris" {
		t.Fatalf("flight row: %v", rows[1])
	}
	if rows[1][6] != "SAS SK1429" {
		t.Fatalf("flight details column: %v", rows[1])
	}
	if rows[2][0] != "hotel" || rows[2][5] != "HTL-1" {
		t.Fatalf("hotel row: %v", rows[2])
	}
}

func TestExportTripXLSX_UnknownTrip(t *testing.T) {
	svc, _, _ := setup(t)
	if _, err := svc.ExportTripXLSX(context.Background(), uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
