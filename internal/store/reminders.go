package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Reminder statuses. Restricted to these three by convention only; the
// store does not enforce them.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Reminder is the persisted entity.
type Reminder struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DatetimeISO string    `json:"datetime_iso"`
	Timezone    string    `json:"timezone"`
	Status      string    `json:"status"`
	Recurrence  *string   `json:"recurrence"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewReminder holds the caller-supplied fields of a reminder to create.
// Id, status and timestamps are assigned by the store.
type NewReminder struct {
	Title       string
	Description *string
	DatetimeISO string
	Timezone    string
	Recurrence  *string
}

// ReminderPatch is a partial update: nil fields are left untouched.
type ReminderPatch struct {
	Title       *string
	Description *string
	DatetimeISO *string
	Status      *string
	Recurrence  *string
}

const reminderColumns = `id, title, description, datetime_iso, timezone, status, recurrence, created_at, updated_at`

func scanReminder(row pgx.Row) (*Reminder, error) {
	var r Reminder
	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.DatetimeISO, &r.Timezone,
		&r.Status, &r.Recurrence, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a reminder with a generated id, scheduled status and both
// timestamps set to now.
func (s *Store) Create(ctx context.Context, nr NewReminder) (*Reminder, error) {
	if nr.Timezone == "" {
		nr.Timezone = "Europe/Paris"
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO reminders (id, title, description, datetime_iso, timezone, status, recurrence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING `+reminderColumns,
		uuid.New(), nr.Title, nr.Description, nr.DatetimeISO, nr.Timezone, StatusScheduled, nr.Recurrence,
	)
	r, err := scanReminder(row)
	if err != nil {
		return nil, fmt.Errorf("insert reminder: %w", err)
	}
	return r, nil
}

// List returns reminders ordered ascending by datetime_iso, optionally
// filtered by status. The sort is lexicographic on the stored string, which
// is only chronological if every writer uses the same UTC-offset convention.
func (s *Store) List(ctx context.Context, status string) ([]Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY datetime_iso ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	defer rows.Close()

	reminders := []Reminder{}
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		reminders = append(reminders, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminders: %w", err)
	}
	return reminders, nil
}

// Get returns the reminder with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Reminder, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE id = $1`, id)
	r, err := scanReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reminder: %w", err)
	}
	return r, nil
}

// Update merges the non-nil patch fields into the reminder and refreshes
// updated_at, even when the patch is empty. Concurrent updates to the same
// reminder are last-write-wins.
func (s *Store) Update(ctx context.Context, id uuid.UUID, patch ReminderPatch) (*Reminder, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE reminders SET
			title        = COALESCE($2, title),
			description  = COALESCE($3, description),
			datetime_iso = COALESCE($4, datetime_iso),
			status       = COALESCE($5, status),
			recurrence   = COALESCE($6, recurrence),
			updated_at   = now()
		WHERE id = $1
		RETURNING `+reminderColumns,
		id, patch.Title, patch.Description, patch.DatetimeISO, patch.Status, patch.Recurrence,
	)
	r, err := scanReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	return r, nil
}

// Delete removes the reminder with the given id, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
