package db

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/test/mocks"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMovementTable_SumByKeyQuery(t *testing.T) {
	tests := []struct {
		name        string
		table       movementTable
		filter      *domain.StockKey
		contains    []string
		notContains []string
		args        []interface{}
	}{
		{
			name:  "groups_live_events_of_tenant",
			table: stockInTable,
			contains: []string{
				"FROM stock_in",
				"SUM(quantity_added)",
				"archived_at IS NULL",
				"owner_user_id = $1",
				"GROUP BY variant_id, size_id, color_id",
			},
			notContains: []string{"variant_id ="},
			args:        []interface{}{int64(7)},
		},
		{
			name:   "absent_dimensions_filter_as_is_null",
			table:  stockOutTable,
			filter: &domain.StockKey{VariantID: 3, ColorID: domain.Tracked(0)},
			contains: []string{
				"FROM stock_out",
				"size_id IS NULL",
				"color_id = $",
				"variant_id = $",
			},
			args: []interface{}{int64(7), int64(0), int64(3)},
		},
		{
			name:   "adjustments_are_signed",
			table:  stockAdjustmentTable,
			filter: &domain.StockKey{VariantID: 3},
			contains: []string{
				"CASE WHEN adjustment_type = 'Increase' THEN quantity_adjusted ELSE -quantity_adjusted END",
				"size_id IS NULL",
				"color_id IS NULL",
			},
			args: []interface{}{int64(7), int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.table.sumByKeyQuery(7, tt.filter).ToSql()
			require.NoError(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, sql, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, sql, s)
			}
			assert.ElementsMatch(t, tt.args, args)
		})
	}
}

func TestMovementTable_StatsQuery(t *testing.T) {
	since := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	sql, args, err := stockOutTable.statsQuery(4, since).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "COUNT(*) FILTER (WHERE date_removed >= $1)")
	assert.Contains(t, sql, "SUM(quantity_removed) FILTER (WHERE date_removed >= $2)")
	assert.Contains(t, sql, "owner_user_id = $3")
	assert.Equal(t, []interface{}{since, since, int64(4)}, args)
}

func TestMovementLog_SumByKey(t *testing.T) {
	size := int64(2)
	color := int64(9)

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockDatabase)
		expected      domain.PartialSums
		expectedError error
	}{
		{
			name: "null_columns_become_untracked_dimensions",
			setupMocks: func(m *mocks.MockDatabase) {
				m.EXPECT().
					Query(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(newFakeRows(
						[]any{int64(1), nil, nil, int64(10)},
						[]any{int64(1), &size, nil, int64(4)},
						[]any{int64(1), &size, &color, int64(-2)},
					), nil)
			},
			expected: domain.PartialSums{
				{VariantID: 1}:                                                     10,
				{VariantID: 1, SizeID: domain.Tracked(2)}:                          4,
				{VariantID: 1, SizeID: domain.Tracked(2), ColorID: domain.Tracked(9)}: -2,
			},
		},
		{
			name: "query_failure_is_wrapped",
			setupMocks: func(m *mocks.MockDatabase) {
				m.EXPECT().
					Query(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrTransientStore)
			},
			expectedError: domain.ErrTransientStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := mocks.NewMockDatabase(ctrl)
			tt.setupMocks(mockDB)

			repo := NewAdjustmentRepository(mockDB, quietLogger())
			sums, err := repo.SumByKey(context.Background(), 5, nil)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sums)
		})
	}
}

func TestMovementLog_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDatabase(ctrl)
	mockDB.EXPECT().
		QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fakeRow{values: []any{int64(12), int64(40), int64(2), int64(5)}})

	repo := NewInflowRepository(mockDB, quietLogger())
	stats, err := repo.Stats(context.Background(), 1, time.Now())

	require.NoError(t, err)
	assert.Equal(t, domain.MovementStats{TotalEvents: 12, TotalQuantity: 40, TodayEvents: 2, TodayQuantity: 5}, stats)
}

func TestInflowRepository_Append(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC)
	event := &domain.InflowEvent{
		Movement: domain.Movement{
			Key:         domain.StockKey{VariantID: 3, ColorID: domain.Tracked(8)},
			Quantity:    6,
			Timestamp:   ts,
			ActorUserID: 11,
			OwnerUserID: 10,
		},
		UnitCost: decimal.NewFromFloat(2.5),
	}

	mockDB := mocks.NewMockDatabase(ctrl)
	mockDB.EXPECT().
		QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, sql string, args ...any) pgx.Row {
			assert.Contains(t, sql, "INSERT INTO stock_in")
			assert.Contains(t, sql, "RETURNING id")
			require.Len(t, args, 9)
			assert.Equal(t, int64(3), args[0])
			assert.Nil(t, args[1])
			assert.Equal(t, int64(8), *(args[2].(*int64)))
			assert.Equal(t, 6, args[3])
			assert.Equal(t, ts, args[4])
			return fakeRow{values: []any{int64(77)}}
		})

	repo := NewInflowRepository(mockDB, quietLogger())
	id, err := repo.Append(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
}

func TestThresholdRepository_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	mockDB := mocks.NewMockDatabase(ctrl)
	mockDB.EXPECT().
		QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, sql string, args ...any) pgx.Row {
			assert.Contains(t, sql, "ON CONFLICT (variant_id, size_id, color_id) WHERE archived_at IS NULL")
			assert.Contains(t, sql, "DO UPDATE SET")
			assert.Equal(t, int64(4), args[0])
			assert.Nil(t, args[1])
			assert.Nil(t, args[2])
			assert.Equal(t, 15, args[3])
			assert.Equal(t, int64(21), args[4])
			return fakeRow{values: []any{int64(1), int64(4), nil, nil, 0, 15, int64(21), now, now}}
		})

	repo := NewThresholdRepository(mockDB, quietLogger())
	rec, err := repo.Upsert(context.Background(), domain.StockKey{VariantID: 4}, 15, 21)

	require.NoError(t, err)
	assert.Equal(t, domain.StockKey{VariantID: 4}, rec.Key)
	assert.Equal(t, 15, rec.ReorderLevel)
	assert.Equal(t, int64(21), rec.LastUpdatedBy)
}

func TestThresholdRepository_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDatabase(ctrl)
	mockDB.EXPECT().
		QueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fakeRow{err: pgx.ErrNoRows})

	repo := NewThresholdRepository(mockDB, quietLogger())
	rec, err := repo.Get(context.Background(), domain.StockKey{VariantID: 1})

	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{name: "nil", err: nil},
		{name: "no_rows", err: pgx.ErrNoRows},
		{name: "unique_violation", err: &pgconn.PgError{Code: "23505"}},
		{name: "deadline_exceeded", err: context.DeadlineExceeded, transient: true},
		{name: "connection_failure", err: &pgconn.PgError{Code: "08006"}, transient: true},
		{name: "admin_shutdown", err: &pgconn.PgError{Code: "57P01"}, transient: true},
		{name: "too_many_connections", err: &pgconn.PgError{Code: "53300"}, transient: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			assert.Equal(t, tt.transient, errors.Is(got, domain.ErrTransientStore))
			if tt.err != nil {
				assert.ErrorIs(t, got, tt.err)
			} else {
				assert.NoError(t, got)
			}
		})
	}
}

func TestKeyPredicate(t *testing.T) {
	sql, args, err := keyPredicate(domain.StockKey{VariantID: 2, SizeID: domain.Tracked(5)}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "color_id IS NULL")
	assert.Contains(t, sql, "size_id = ?")
	assert.Contains(t, sql, "variant_id = ?")
	assert.ElementsMatch(t, []interface{}{int64(5), int64(2)}, args)
}
