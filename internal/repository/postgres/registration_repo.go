package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"confcentral/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

// NewRegistrationRepository creates a RegistrationRepository backed by Postgres.
func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

// Register inserts the registration and decrements the seat count in one
// transaction. The row lock on the conference serializes concurrent
// registrations so the seat count never goes negative.
func (r *registrationRepository) Register(ctx context.Context, conferenceID, userID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var seats int
	err = tx.QueryRowContext(ctx,
		`SELECT seats_available FROM conferences WHERE id = $1 FOR UPDATE`,
		conferenceID).Scan(&seats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	if seats <= 0 {
		return domain.ErrConflict
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO conference_registrations (conference_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		conferenceID, userID)
	if err != nil {
		return err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if inserted == 0 {
		return domain.ErrConflict
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available - 1, updated_at = NOW() WHERE id = $1`,
		conferenceID); err != nil {
		return err
	}
	return tx.Commit()
}

// Unregister removes the registration and returns the seat. Reports false
// without error when the user was not registered.
func (r *registrationRepository) Unregister(ctx context.Context, conferenceID, userID string) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM conference_registrations WHERE conference_id = $1 AND user_id = $2`,
		conferenceID, userID)
	if err != nil {
		return false, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if deleted == 0 {
		return false, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available + 1, updated_at = NOW() WHERE id = $1`,
		conferenceID); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (r *registrationRepository) ListConferenceIDsByUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT conference_id FROM conference_registrations WHERE user_id = $1 ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
