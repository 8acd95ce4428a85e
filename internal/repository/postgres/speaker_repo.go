package postgres

import (
	"context"
	"database/sql"
	"errors"

	"confcentral/internal/domain"

	"github.com/lib/pq"
)

type speakerRepository struct {
	DB *sql.DB
}

// NewSpeakerRepository creates a SpeakerRepository backed by Postgres.
func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

func (r *speakerRepository) Create(ctx context.Context, speaker *domain.Speaker) error {
	query := `
		INSERT INTO speakers (name, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, speaker.Name, speaker.Bio, speaker.CreatedAt, speaker.UpdatedAt).
		Scan(&speaker.ID)
}

func (r *speakerRepository) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	query := `SELECT id, name, bio, created_at, updated_at FROM speakers WHERE id = $1`
	speaker := &domain.Speaker{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&speaker.ID, &speaker.Name, &speaker.Bio, &speaker.CreatedAt, &speaker.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return speaker, nil
}

func (r *speakerRepository) GetMulti(ctx context.Context, ids []string) ([]*domain.Speaker, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, bio, created_at, updated_at FROM speakers WHERE id = ANY($1)`,
		pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSpeakers(rows)
}

func (r *speakerRepository) List(ctx context.Context) ([]*domain.Speaker, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, bio, created_at, updated_at FROM speakers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSpeakers(rows)
}

func collectSpeakers(rows *sql.Rows) ([]*domain.Speaker, error) {
	var speakers []*domain.Speaker
	for rows.Next() {
		speaker := &domain.Speaker{}
		if err := rows.Scan(&speaker.ID, &speaker.Name, &speaker.Bio, &speaker.CreatedAt, &speaker.UpdatedAt); err != nil {
			return nil, err
		}
		speakers = append(speakers, speaker)
	}
	return speakers, rows.Err()
}
