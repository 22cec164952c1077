package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"tripdeck/internal/common"
	"tripdeck/internal/entity"
)

// TripRepository is the persistence port for trips.
type TripRepository interface {
	Create(ctx context.Context, t *entity.Trip) error
	Update(ctx context.Context, t *entity.Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	List(ctx context.Context) ([]*entity.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type tripRepo struct {
	db *sql.DB
}

func NewTripRepository(db *sql.DB) TripRepository {
	return &tripRepo{db: db}
}

func (r *tripRepo) Create(ctx context.Context, t *entity.Trip) error {
	now := time.Now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now
	_, err := r.db.ExecContext(ctx, insertTripSQL,
		t.ID.String(), t.Title, t.Destination, t.StartDate, t.EndDate, t.ImageURL,
		formatTS(t.CreatedAt), formatTS(t.UpdatedAt),
	)
	return common.WrapError(err, "insert trip")
}

func (r *tripRepo) Update(ctx context.Context, t *entity.Trip) error {
	t.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, updateTripSQL,
		t.ID.String(), t.Title, t.Destination, t.StartDate, t.EndDate, t.ImageURL,
		formatTS(t.UpdatedAt),
	)
	if err != nil {
		return common.WrapError(err, "update trip")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *tripRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	row := r.db.QueryRowContext(ctx, selectTripSQL, id.String())
	t, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.WrapError(err, "select trip")
	}
	return t, nil
}

func (r *tripRepo) List(ctx context.Context) ([]*entity.Trip, error) {
	rows, err := r.db.QueryContext(ctx, listTripsSQL)
	if err != nil {
		return nil, common.WrapError(err, "list trips")
	}
	defer rows.Close()

	var out []*entity.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, common.WrapError(err, "scan trip")
		}
		out = append(out, t)
	}
	return out, common.WrapError(rows.Err(), "list trips")
}

func (r *tripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Bookings go first; sqlite only honors the cascade with foreign keys
	// switched on, so doing it explicitly works on both engines.
	if _, err := r.db.ExecContext(ctx, deleteTripBookingsSQL, id.String()); err != nil {
		return common.WrapError(err, "delete trip bookings")
	}
	res, err := r.db.ExecContext(ctx, deleteTripSQL, id.String())
	if err != nil {
		return common.WrapError(err, "delete trip")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *tripRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.GetByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*entity.Trip, error) {
	var t entity.Trip
	var id, createdAt, updatedAt string
	if err := row.Scan(&id, &t.Title, &t.Destination, &t.StartDate, &t.EndDate,
		&t.ImageURL, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if t.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	t.CreatedAt = parseTS(createdAt)
	t.UpdatedAt = parseTS(updatedAt)
	t.Bookings = []entity.Booking{}
	return &t, nil
}

func formatTS(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTS(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
