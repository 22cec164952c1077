package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"tripdeck/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// itinerary exports.
type Service struct {
	tripsRepo    repository.TripRepository
	bookingsRepo repository.BookingRepository
	logger       *slog.Logger
}

func NewService(trips repository.TripRepository, bookings repository.BookingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{tripsRepo: trips, bookingsRepo: bookings, logger: logger}
}

// ExportTripXLSX returns an XLSX workbook (as bytes) listing every booking
// of the trip in chronological order.
func (s *Service) ExportTripXLSX(ctx context.Context, tripID uuid.UUID) ([]byte, error) {
	start := time.Now()

	trip, err := s.tripsRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("query trip: %w", err)
	}
	bookings, err := s.bookingsRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Itinerary"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Type",
		"Title",
		"Start",
		"End",
		"Location",
		"Confirmation",
		"Details",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range bookings {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		details := b.Description
		if b.Type == "flight" && b.Airline != "" {
			if details != "" {
				details = b.Airline + " " + b.FlightNumber + ", " + details
			} else {
				details = b.Airline + " " + b.FlightNumber
			}
		}

		write(1, string(b.Type))
		write(2, b.Title)
		write(3, b.StartDate)
		write(4, b.EndDate)
		write(5, b.Location)
		write(6, b.ConfirmationNumber)
		write(7, truncate(details, 140))
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "D", 20)
	_ = f.SetColWidth(sheet, "E", "E", 26)
	_ = f.SetColWidth(sheet, "F", "F", 16)
	_ = f.SetColWidth(sheet, "G", "G", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"trip_id", tripID.String(),
		"trip", trip.Title,
		"rows", len(bookings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
