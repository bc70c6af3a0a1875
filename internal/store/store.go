package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no reminder exists for a given id.
var ErrNotFound = errors.New("reminder not found")

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the reminders table and its indexes: the unique
// primary key on id, the datetime_iso sort index, and the compound
// status+datetime_iso index for filtered listings.
func (s *Store) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reminders (
			id          uuid PRIMARY KEY,
			title       text NOT NULL,
			description text,
			datetime_iso text NOT NULL,
			timezone    text NOT NULL DEFAULT 'Europe/Paris',
			status      text NOT NULL DEFAULT 'scheduled',
			recurrence  text,
			created_at  timestamptz NOT NULL,
			updated_at  timestamptz NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reminders_datetime ON reminders (datetime_iso)`,
		`CREATE INDEX IF NOT EXISTS idx_reminders_status_datetime ON reminders (status, datetime_iso)`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
