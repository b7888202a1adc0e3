package db

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppliedMigrations(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expected      []AppliedMigration
		errorContains string
	}{
		{
			name: "returns_versions_in_order",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT version, dirty\s+FROM public.schema_migrations`).
					WillReturnRows(sqlmock.NewRows([]string{"version", "dirty"}).
						AddRow(1, false).
						AddRow(3, false))
			},
			expected: []AppliedMigration{{Version: 1}, {Version: 3}},
		},
		{
			name: "empty_table",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT version, dirty`).
					WillReturnRows(sqlmock.NewRows([]string{"version", "dirty"}))
			},
			expected: []AppliedMigration{},
		},
		{
			name: "query_error",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT version, dirty`).
					WillReturnError(errors.New("relation does not exist"))
			},
			errorContains: "failed to query migrations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer sqlDB.Close()

			tt.setupMock(mock)

			applied, err := appliedMigrations(context.Background(), sqlDB, "public", "schema_migrations")
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, applied)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMigrationsFS_PairsUpAndDown(t *testing.T) {
	ups, err := fs.Glob(MigrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(MigrationsFS, "migrations/*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))

	thresholds, err := fs.ReadFile(MigrationsFS, "migrations/000003_create_inventory_thresholds.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(thresholds), "NULLS NOT DISTINCT")
}
