package postgres

import (
	"context"
	"database/sql"

	"confcentral/internal/domain"
)

type wishlistRepository struct {
	DB *sql.DB
}

// NewWishlistRepository creates a WishlistRepository backed by Postgres.
func NewWishlistRepository(db *sql.DB) domain.WishlistRepository {
	return &wishlistRepository{DB: db}
}

func (r *wishlistRepository) Add(ctx context.Context, userID, sessionID string) error {
	// ON CONFLICT makes re-adding a no-op; the set never holds duplicates.
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO wishlists (user_id, session_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, sessionID)
	return err
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, sessionID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM wishlists WHERE user_id = $1 AND session_id = $2`,
		userID, sessionID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *wishlistRepository) ListSessionIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT session_id FROM wishlists WHERE user_id = $1 ORDER BY created_at`,
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
