package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"confcentral/internal/domain"

	"github.com/lib/pq"
)

// sessionColumns maps filterable attributes to columns; this is the whole
// single-predicate query surface for the session kind.
var sessionColumns = map[string]string{
	"type_of_session": "type_of_session",
	"start_time":      "start_time",
	"date":            "date",
	"duration":        "duration_minutes",
}

type sessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository creates a SessionRepository backed by Postgres.
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

const sessionSelect = `
	SELECT id, conference_id, name, highlights, duration_minutes, type_of_session, date, to_char(start_time, 'HH24:MI'), created_at, updated_at
	FROM sessions
`

func scanSession(scan func(dest ...any) error) (*domain.Session, error) {
	sess := &domain.Session{}
	var date sql.NullTime
	var startTime sql.NullString
	err := scan(&sess.ID, &sess.ConferenceID, &sess.Name, &sess.Highlights, &sess.Duration,
		&sess.Type, &date, &startTime, &sess.CreatedAt, &sess.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if date.Valid {
		t := date.Time
		sess.Date = &t
	}
	if startTime.Valid {
		sess.StartTime = startTime.String
	}
	sess.SpeakerIDs = []string{}
	return sess, nil
}

func (r *sessionRepository) Create(ctx context.Context, sess *domain.Session) error {
	query := `
		INSERT INTO sessions (conference_id, name, highlights, duration_minutes, type_of_session, date, start_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::time, $8, $9)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query,
		sess.ConferenceID, sess.Name, sess.Highlights, sess.Duration, string(sess.Type),
		sess.Date, sess.StartTime, sess.CreatedAt, sess.UpdatedAt,
	).Scan(&sess.ID); err != nil {
		return err
	}
	// Speaker set on create; the primary key drops duplicates.
	for _, speakerID := range sess.SpeakerIDs {
		if err := r.AddSpeaker(ctx, sess.ID, speakerID); err != nil {
			return err
		}
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	row := r.DB.QueryRowContext(ctx, sessionSelect+` WHERE id = $1`, id)
	sess, err := scanSession(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadSpeakers(ctx, []*domain.Session{sess}); err != nil {
		return nil, err
	}
	return sess, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sessionRepository) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, sessionSelect+` WHERE conference_id = $1 ORDER BY date, start_time`, conferenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *sessionRepository) ListByConferenceIDAndType(ctx context.Context, conferenceID string, t domain.SessionType) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx,
		sessionSelect+` WHERE conference_id = $1 AND type_of_session = $2 ORDER BY date, start_time`,
		conferenceID, string(t))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *sessionRepository) ListBySpeakerID(ctx context.Context, speakerID string) ([]*domain.Session, error) {
	query := sessionSelect + `
		WHERE id IN (SELECT session_id FROM session_speakers WHERE speaker_id = $1)
		ORDER BY date, start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, speakerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

// QueryKeys runs one single-attribute comparison over all sessions and
// returns matching keys only.
func (r *sessionRepository) QueryKeys(ctx context.Context, f domain.Filter) ([]string, error) {
	col, ok := sessionColumns[f.Attribute]
	if !ok {
		return nil, domain.NewQueryError("unsupported session attribute %q", f.Attribute)
	}
	op, ok := sqlOperators[f.Op]
	if !ok {
		return nil, domain.NewQueryError("unsupported operator %q", string(f.Op))
	}
	cast := ""
	if f.Attribute == "start_time" {
		cast = "::time"
	}
	query := fmt.Sprintf(`SELECT id FROM sessions WHERE %s %s $1%s`, col, op, cast)
	rows, err := r.DB.QueryContext(ctx, query, f.Value)
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

func (r *sessionRepository) GetMulti(ctx context.Context, ids []string) ([]*domain.Session, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.DB.QueryContext(ctx, sessionSelect+` WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *sessionRepository) AddSpeaker(ctx context.Context, sessionID, speakerID string) error {
	// ON CONFLICT keeps the speaker set duplicate-free; re-adding is a no-op.
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO session_speakers (session_id, speaker_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		sessionID, speakerID)
	return err
}

func (r *sessionRepository) RemoveSpeaker(ctx context.Context, sessionID, speakerID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM session_speakers WHERE session_id = $1 AND speaker_id = $2`,
		sessionID, speakerID)
	return err
}

func (r *sessionRepository) collect(ctx context.Context, rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		sess, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadSpeakers(ctx, sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) loadSpeakers(ctx context.Context, sessions []*domain.Session) error {
	if len(sessions) == 0 {
		return nil
	}
	ids := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		ids = append(ids, sess.ID)
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT session_id, speaker_id FROM session_speakers WHERE session_id = ANY($1)`,
		pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	bySession := make(map[string][]string)
	for rows.Next() {
		var sessionID, speakerID string
		if err := rows.Scan(&sessionID, &speakerID); err != nil {
			return err
		}
		bySession[sessionID] = append(bySession[sessionID], speakerID)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for _, sess := range sessions {
		if s := bySession[sess.ID]; s != nil {
			sess.SpeakerIDs = s
		}
	}
	return nil
}
