package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"confcentral/internal/domain"

	"github.com/lib/pq"
)

// conferenceColumns maps filterable attributes to columns. This whitelist is
// the backend's query surface; anything else is a QueryError.
var conferenceColumns = map[string]string{
	"city":            "city",
	"topics":          "topics",
	"month":           "month",
	"max_attendees":   "max_attendees",
	"seats_available": "seats_available",
	"start_date":      "start_date",
	"end_date":        "end_date",
}

// sqlOperators maps operators to their SQL form. Membership in this map also
// guards against injection through the operator.
var sqlOperators = map[domain.Operator]string{
	domain.OpEq:  "=",
	domain.OpNe:  "<>",
	domain.OpGt:  ">",
	domain.OpGte: ">=",
	domain.OpLt:  "<",
	domain.OpLte: "<=",
}

type conferenceRepository struct {
	DB *sql.DB
}

// NewConferenceRepository creates a ConferenceRepository backed by Postgres.
func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{DB: db}
}

const conferenceSelect = `
	SELECT id, name, city, topics, start_date, end_date, month, max_attendees, seats_available, organizer_user_id, created_at, updated_at
	FROM conferences
`

func scanConference(scan func(dest ...any) error) (*domain.Conference, error) {
	conf := &domain.Conference{}
	var startDate, endDate sql.NullTime
	var topics pq.StringArray
	err := scan(&conf.ID, &conf.Name, &conf.City, &topics, &startDate, &endDate,
		&conf.Month, &conf.MaxAttendees, &conf.SeatsAvailable, &conf.OrganizerUserID,
		&conf.CreatedAt, &conf.UpdatedAt)
	if err != nil {
		return nil, err
	}
	conf.Topics = []string(topics)
	if startDate.Valid {
		t := startDate.Time
		conf.StartDate = &t
	}
	if endDate.Valid {
		t := endDate.Time
		conf.EndDate = &t
	}
	return conf, nil
}

func (r *conferenceRepository) Create(ctx context.Context, conf *domain.Conference) error {
	query := `
		INSERT INTO conferences (name, city, topics, start_date, end_date, month, max_attendees, seats_available, organizer_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		conf.Name, conf.City, pq.Array(conf.Topics), conf.StartDate, conf.EndDate,
		conf.Month, conf.MaxAttendees, conf.SeatsAvailable, conf.OrganizerUserID,
		conf.CreatedAt, conf.UpdatedAt,
	).Scan(&conf.ID)
}

func (r *conferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	row := r.DB.QueryRowContext(ctx, conferenceSelect+` WHERE id = $1`, id)
	conf, err := scanConference(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return conf, nil
}

func (r *conferenceRepository) Update(ctx context.Context, conf *domain.Conference) error {
	query := `
		UPDATE conferences
		SET name = $2, city = $3, topics = $4, start_date = $5, end_date = $6, month = $7, max_attendees = $8, seats_available = $9, updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		conf.ID, conf.Name, conf.City, pq.Array(conf.Topics), conf.StartDate, conf.EndDate,
		conf.Month, conf.MaxAttendees, conf.SeatsAvailable,
	)
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

func (r *conferenceRepository) ListByOrganizerID(ctx context.Context, userID string) ([]*domain.Conference, error) {
	rows, err := r.DB.QueryContext(ctx, conferenceSelect+` WHERE organizer_user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectConferences(rows)
}

// Query runs the backend's native multi-filter form: a conjunction of
// single-attribute comparisons with inequality allowed on at most one
// attribute. Violations surface as *domain.QueryError.
func (r *conferenceRepository) Query(ctx context.Context, filters []domain.Filter) ([]*domain.Conference, error) {
	if err := domain.ValidateInequalityRule(filters); err != nil {
		return nil, err
	}
	where := ""
	var args []any
	for i, f := range filters {
		clause, err := conferenceClause(f, i+1)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
		args = append(args, f.Value)
	}
	rows, err := r.DB.QueryContext(ctx, conferenceSelect+where+` ORDER BY name`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectConferences(rows)
}

// QueryKeys runs one single-attribute comparison and returns matching keys
// only. This is the primitive the intersection engine builds on.
func (r *conferenceRepository) QueryKeys(ctx context.Context, f domain.Filter) ([]string, error) {
	clause, err := conferenceClause(f, 1)
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT id FROM conferences WHERE `+clause, f.Value)
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

func (r *conferenceRepository) GetMulti(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.DB.QueryContext(ctx, conferenceSelect+` WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectConferences(rows)
}

func conferenceClause(f domain.Filter, arg int) (string, error) {
	col, ok := conferenceColumns[f.Attribute]
	if !ok {
		return "", domain.NewQueryError("unsupported conference attribute %q", f.Attribute)
	}
	if f.Attribute == "topics" {
		if f.Op != domain.OpEq {
			return "", domain.NewQueryError("topics supports equality only")
		}
		return fmt.Sprintf("$%d = ANY(topics)", arg), nil
	}
	op, ok := sqlOperators[f.Op]
	if !ok {
		return "", domain.NewQueryError("unsupported operator %q", string(f.Op))
	}
	return fmt.Sprintf("%s %s $%d", col, op, arg), nil
}

func collectConferences(rows *sql.Rows) ([]*domain.Conference, error) {
	var confs []*domain.Conference
	for rows.Next() {
		conf, err := scanConference(rows.Scan)
		if err != nil {
			return nil, err
		}
		confs = append(confs, conf)
	}
	return confs, rows.Err()
}
