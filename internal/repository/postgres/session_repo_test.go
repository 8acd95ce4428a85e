package postgres

import (
	"context"
	"database/sql"
	"testing"

	"confcentral/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_QueryKeys(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		filter   domain.Filter
		mock     func(mock sqlmock.Sqlmock)
		want     []string
		wantErr  bool
		queryErr bool
	}{
		{
			name:   "inequality on type",
			filter: domain.Filter{Attribute: "type_of_session", Op: domain.OpNe, Value: "WORKSHOP"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id FROM sessions WHERE type_of_session <> \$1`).
					WithArgs("WORKSHOP").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("s-1").AddRow("s-2"))
			},
			want: []string{"s-1", "s-2"},
		},
		{
			name:   "inequality on start time",
			filter: domain.Filter{Attribute: "start_time", Op: domain.OpLt, Value: "19:00"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id FROM sessions WHERE start_time < \$1::time`).
					WithArgs("19:00").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("s-2"))
			},
			want: []string{"s-2"},
		},
		{
			name:     "unknown attribute is a query error",
			filter:   domain.Filter{Attribute: "speaker_count", Op: domain.OpGt, Value: 1},
			mock:     func(mock sqlmock.Sqlmock) {},
			wantErr:  true,
			queryErr: true,
		},
		{
			name:     "unknown operator is a query error",
			filter:   domain.Filter{Attribute: "start_time", Op: domain.Operator("~"), Value: "x"},
			mock:     func(mock sqlmock.Sqlmock) {},
			wantErr:  true,
			queryErr: true,
		},
		{
			name:   "db error",
			filter: domain.Filter{Attribute: "date", Op: domain.OpEq, Value: "2026-09-01"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id FROM sessions WHERE date = \$1`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSessionRepository(db)
			got, err := repo.QueryKeys(ctx, tt.filter)
			if tt.wantErr {
				require.Error(t, err)
				if tt.queryErr {
					var qe *domain.QueryError
					assert.ErrorAs(t, err, &qe)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_AddSpeakerIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO session_speakers`).
		WithArgs("s-1", "spk-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Second add hits the conflict clause and affects no rows.
	mock.ExpectExec(`INSERT INTO session_speakers`).
		WithArgs("s-1", "spk-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewSessionRepository(db)
	require.NoError(t, repo.AddSpeaker(ctx, "s-1", "spk-1"))
	require.NoError(t, repo.AddSpeaker(ctx, "s-1", "spk-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, conference_id`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewSessionRepository(db)
	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
