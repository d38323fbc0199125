package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestSettingsRepo(db *sql.DB) SettingsRepository {
	return NewSettingsRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func TestGetSetting(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantValue string
		wantErr   error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM settings WHERE name = \\?").
					WithArgs("first_launch").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("false"))
			},
			wantValue: "false",
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM settings").
					WithArgs("first_launch").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
			wantErr: ErrSettingNotFound,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM settings").
					WithArgs("first_launch").
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			value, err := newTestSettingsRepo(db).GetSetting(testContext(), "first_launch")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantValue, value)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSetSetting(t *testing.T) {
	t.Run("upsert", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec("INSERT INTO settings .* ON CONFLICT\\(name\\) DO UPDATE").
			WithArgs("first_launch", "false").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := newTestSettingsRepo(db).SetSetting(testContext(), "first_launch", "false")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec("INSERT INTO settings").
			WithArgs("first_launch", "false").
			WillReturnError(errors.New("database is locked"))

		err := newTestSettingsRepo(db).SetSetting(testContext(), "first_launch", "false")

		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBuildSettingQueries(t *testing.T) {
	query, args, err := buildGetSettingQuery("k")
	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM settings WHERE name = ? LIMIT 1", query)
	assert.Equal(t, []any{"k"}, args)

	query, args, err = buildUpsertSettingQuery("k", "v")
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO settings (name,value,updated_at) VALUES (?,?,CURRENT_TIMESTAMP)")
	assert.Equal(t, []any{"k", "v"}, args)
}
