package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"tripdeck/internal/common"
)

type Config struct {
	DSN             string
	MaxConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// Open connects to the configured database. Postgres DSNs go through the
// pgx stdlib driver; anything else is treated as a sqlite file path (or
// ":memory:" for tests). The schema is bootstrapped on open.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	driver := "sqlite"
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		driver = "pgx"
	}
	logger.Info("connecting to database", "driver", driver)

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, common.WrapError(common.ErrDatabase, "open: "+err.Error())
	}

	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(int(cfg.MaxConns))
	}
	if driver == "sqlite" && strings.Contains(cfg.DSN, ":memory:") {
		// Every pooled connection would otherwise see its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}
	if cfg.MaxConnLifetime > 0 {
		db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	}
	if cfg.MaxConnIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.MaxConnIdleTime)
	}

	pingCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to ping database", "error", err)
		_ = db.Close()
		return nil, common.WrapError(common.ErrDatabase, "ping: "+err.Error())
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, common.WrapError(err, "bootstrap schema")
	}

	logger.Info("successfully connected to database")
	return db, nil
}

// migrate creates the schema when missing. Types are kept to TEXT so the
// statements run unchanged on sqlite and postgres; dates are stored in the
// canonical draft layout.
func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trips (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			destination TEXT NOT NULL,
			start_date  TEXT NOT NULL,
			end_date    TEXT NOT NULL,
			image_url   TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id                  TEXT PRIMARY KEY,
			trip_id             TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
			type                TEXT NOT NULL,
			title               TEXT NOT NULL,
			start_date          TEXT NOT NULL,
			end_date            TEXT NOT NULL DEFAULT '',
			location            TEXT NOT NULL DEFAULT '',
			description         TEXT NOT NULL DEFAULT '',
			confirmation_number TEXT NOT NULL DEFAULT '',
			from_place          TEXT NOT NULL DEFAULT '',
			to_place            TEXT NOT NULL DEFAULT '',
			airline             TEXT NOT NULL DEFAULT '',
			flight_number       TEXT NOT NULL DEFAULT '',
			image_url           TEXT NOT NULL DEFAULT '',
			created_at          TEXT NOT NULL,
			updated_at          TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_trip ON bookings(trip_id)`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection gracefully
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	logger.Info("closing database connection")
	if err := db.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}
}
