// internal/adapters/db/threshold_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
)

var thresholdColumns = []string{
	"id", "variant_id", "size_id", "color_id", "current_stock", "reorder_level",
	"user_id", "updated_at", "created_at",
}

// upsertThresholdSQL relies on the partial unique index on (variant_id, size_id, color_id)
// declared NULLS NOT DISTINCT, so an absent size or color still conflicts.
const upsertThresholdSQL = `
	INSERT INTO inventory_thresholds (
		variant_id, size_id, color_id, current_stock, reorder_level, user_id, created_at, updated_at
	) VALUES ($1, $2, $3, 0, $4, $5, NOW(), NOW())
	ON CONFLICT (variant_id, size_id, color_id) WHERE archived_at IS NULL
	DO UPDATE SET
		reorder_level = EXCLUDED.reorder_level,
		user_id = EXCLUDED.user_id,
		updated_at = EXCLUDED.updated_at
	RETURNING id, variant_id, size_id, color_id, current_stock, reorder_level, user_id, updated_at, created_at`

// ThresholdRepository implements ports.ThresholdStore
type ThresholdRepository struct {
	db     ports.Database
	logger *slog.Logger
}

var _ ports.ThresholdStore = (*ThresholdRepository)(nil)

// NewThresholdRepository creates a new threshold repository
func NewThresholdRepository(db ports.Database, logger *slog.Logger) *ThresholdRepository {
	return &ThresholdRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "inventory_thresholds")),
	}
}

// Get returns the live record for the key, or nil when none exists
func (r *ThresholdRepository) Get(ctx context.Context, key domain.StockKey) (*domain.ThresholdRecord, error) {
	query, args, err := psql.
		Select(thresholdColumns...).
		From("inventory_thresholds").
		Where(keyPredicate(key)).
		Where(squirrel.Eq{"archived_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build threshold query: %w", err)
	}

	record, err := scanThreshold(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get threshold: %w", err)
	}

	return record, nil
}

// ListByVariants returns the live records of every key of the given variants
func (r *ThresholdRepository) ListByVariants(ctx context.Context, variantIDs []int64) (map[domain.StockKey]*domain.ThresholdRecord, error) {
	result := make(map[domain.StockKey]*domain.ThresholdRecord)
	if len(variantIDs) == 0 {
		return result, nil
	}

	query, args, err := psql.
		Select(thresholdColumns...).
		From("inventory_thresholds").
		Where(squirrel.Eq{"variant_id": variantIDs, "archived_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build threshold list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list thresholds: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		record, err := scanThreshold(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan threshold: %w", err)
		}
		result[record.Key] = record
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate thresholds: %w", classifyError(err))
	}

	return result, nil
}

// ListActive returns the tenant's live records with a positive reorder level.
// Thresholds carry no owner column, so the tenant comes from the live variant.
func (r *ThresholdRepository) ListActive(ctx context.Context, tenantID int64) (map[domain.StockKey]*domain.ThresholdRecord, error) {
	columns := make([]string, len(thresholdColumns))
	for i, c := range thresholdColumns {
		columns[i] = "t." + c
	}

	query, args, err := psql.
		Select(columns...).
		From("inventory_thresholds t").
		Join("variants v ON v.id = t.variant_id").
		Where(squirrel.Eq{"v.user_id": tenantID, "v.archived_at": nil, "t.archived_at": nil}).
		Where(squirrel.Gt{"t.reorder_level": 0}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build active threshold query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active thresholds: %w", err)
	}
	defer rows.Close()

	result := make(map[domain.StockKey]*domain.ThresholdRecord)
	for rows.Next() {
		record, err := scanThreshold(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan threshold: %w", err)
		}
		result[record.Key] = record
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate active thresholds: %w", classifyError(err))
	}

	return result, nil
}

// Upsert sets the reorder level of the key in a single statement
func (r *ThresholdRepository) Upsert(ctx context.Context, key domain.StockKey, reorderLevel int, actorUserID int64) (*domain.ThresholdRecord, error) {
	row := r.db.QueryRow(ctx, upsertThresholdSQL,
		key.VariantID, key.SizeID.Ptr(), key.ColorID.Ptr(), reorderLevel, actorUserID)

	record, err := scanThreshold(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert threshold: %w", err)
	}

	r.logger.DebugContext(ctx, "threshold upserted",
		slog.Int64("id", record.ID),
		slog.String("key", key.String()),
		slog.Int("reorder_level", reorderLevel))

	return record, nil
}

func scanThreshold(row pgx.Row) (*domain.ThresholdRecord, error) {
	var (
		rec             domain.ThresholdRecord
		variantID       int64
		sizeID, colorID *int64
	)

	err := row.Scan(&rec.ID, &variantID, &sizeID, &colorID, &rec.CurrentStock, &rec.ReorderLevel,
		&rec.LastUpdatedBy, &rec.LastUpdatedAt, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	rec.Key = scanKey(variantID, sizeID, colorID)
	return &rec, nil
}
