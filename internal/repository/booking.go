package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"tripdeck/constants"
	"tripdeck/internal/common"
	"tripdeck/internal/entity"
)

// BookingRepository is the persistence port for bookings within a trip.
type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	Update(ctx context.Context, b *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]entity.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepo struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now
	_, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.ID.String(), b.TripID.String(), string(b.Type), b.Title,
		b.StartDate, b.EndDate, b.Location, b.Description,
		b.ConfirmationNumber, b.From, b.To, b.Airline, b.FlightNumber, b.ImageURL,
		formatTS(b.CreatedAt), formatTS(b.UpdatedAt),
	)
	return common.WrapError(err, "insert booking")
}

func (r *bookingRepo) Update(ctx context.Context, b *entity.Booking) error {
	b.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, updateBookingSQL,
		b.ID.String(), string(b.Type), b.Title,
		b.StartDate, b.EndDate, b.Location, b.Description,
		b.ConfirmationNumber, b.From, b.To, b.Airline, b.FlightNumber, b.ImageURL,
		formatTS(b.UpdatedAt),
	)
	if err != nil {
		return common.WrapError(err, "update booking")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	row := r.db.QueryRowContext(ctx, selectBookingSQL, id.String())
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.WrapError(err, "select booking")
	}
	return b, nil
}

func (r *bookingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]entity.Booking, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsSQL, tripID.String())
	if err != nil {
		return nil, common.WrapError(err, "list bookings")
	}
	defer rows.Close()

	out := []entity.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, common.WrapError(err, "scan booking")
		}
		out = append(out, *b)
	}
	return out, common.WrapError(rows.Err(), "list bookings")
}

func (r *bookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, deleteBookingSQL, id.String())
	if err != nil {
		return common.WrapError(err, "delete booking")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanBooking(row rowScanner) (*entity.Booking, error) {
	var b entity.Booking
	var id, tripID, btype, createdAt, updatedAt string
	if err := row.Scan(&id, &tripID, &btype, &b.Title,
		&b.StartDate, &b.EndDate, &b.Location, &b.Description,
		&b.ConfirmationNumber, &b.From, &b.To, &b.Airline, &b.FlightNumber,
		&b.ImageURL, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if b.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if b.TripID, err = uuid.Parse(tripID); err != nil {
		return nil, err
	}
	b.Type, _ = constants.CanonicalBookingType(btype)
	b.CreatedAt = parseTS(createdAt)
	b.UpdatedAt = parseTS(updatedAt)
	return &b, nil
}
