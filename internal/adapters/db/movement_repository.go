// internal/adapters/db/movement_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
)

// movementTable describes the column layout of one movement log
type movementTable struct {
	name       string
	quantity   string
	occurredAt string
	// signed is the per-row contribution to the key's partial sum
	signed string
	// details are the log's own columns read back by history queries
	details []string
	// direction is empty for logs without an adjustment type
	direction string
}

var (
	stockInTable = movementTable{
		name:       "stock_in",
		quantity:   "quantity_added",
		occurredAt: "stock_in_date",
		signed:     "quantity_added",
		details:    []string{"cost_price", "supplier_id"},
	}
	stockOutTable = movementTable{
		name:       "stock_out",
		quantity:   "quantity_removed",
		occurredAt: "date_removed",
		signed:     "quantity_removed",
		details:    []string{"reason"},
	}
	stockAdjustmentTable = movementTable{
		name:       "stock_adjustments",
		quantity:   "quantity_adjusted",
		occurredAt: "adjustment_date",
		signed:     "CASE WHEN adjustment_type = 'Increase' THEN quantity_adjusted ELSE -quantity_adjusted END",
		details:    []string{"adjustment_type", "reason"},
		direction:  "adjustment_type",
	}
)

// sumByKeyQuery groups the tenant's live events by key.
func (t movementTable) sumByKeyQuery(tenantID int64, filter *domain.StockKey) squirrel.SelectBuilder {
	q := psql.
		Select("variant_id", "size_id", "color_id", fmt.Sprintf("COALESCE(SUM(%s), 0)", t.signed)).
		From(t.name).
		Where(squirrel.Eq{"owner_user_id": tenantID, "archived_at": nil}).
		GroupBy("variant_id", "size_id", "color_id")

	if filter != nil {
		q = q.Where(keyPredicate(*filter))
	}
	return q
}

// statsQuery counts events and quantities overall and since the given time.
func (t movementTable) statsQuery(tenantID int64, since time.Time) squirrel.SelectBuilder {
	return psql.
		Select("COUNT(*)", fmt.Sprintf("COALESCE(SUM(%s), 0)", t.quantity)).
		Column(squirrel.Expr(fmt.Sprintf("COUNT(*) FILTER (WHERE %s >= ?)", t.occurredAt), since)).
		Column(squirrel.Expr(fmt.Sprintf("COALESCE(SUM(%s) FILTER (WHERE %s >= ?), 0)", t.quantity, t.occurredAt), since)).
		From(t.name).
		Where(squirrel.Eq{"owner_user_id": tenantID, "archived_at": nil})
}

// movementLog holds the queries shared by the three log repositories
type movementLog struct {
	db     ports.Database
	table  movementTable
	logger *slog.Logger
}

func newMovementLog(db ports.Database, table movementTable, logger *slog.Logger) movementLog {
	return movementLog{
		db:     db,
		table:  table,
		logger: logger.With(slog.String("repository", table.name)),
	}
}

// SumByKey returns the partial sum per key for the tenant's live events
func (l movementLog) SumByKey(ctx context.Context, tenantID int64, filter *domain.StockKey) (domain.PartialSums, error) {
	query, args, err := l.table.sumByKeyQuery(tenantID, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s sum query: %w", l.table.name, err)
	}

	rows, err := l.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to sum %s: %w", l.table.name, err)
	}
	defer rows.Close()

	sums := make(domain.PartialSums)
	for rows.Next() {
		var (
			variantID       int64
			sizeID, colorID *int64
			total           int64
		)
		if err := rows.Scan(&variantID, &sizeID, &colorID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan %s sum: %w", l.table.name, err)
		}
		sums[scanKey(variantID, sizeID, colorID)] += total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s sums: %w", l.table.name, classifyError(err))
	}

	return sums, nil
}

// Stats summarizes the tenant's live events
func (l movementLog) Stats(ctx context.Context, tenantID int64, since time.Time) (domain.MovementStats, error) {
	var stats domain.MovementStats

	query, args, err := l.table.statsQuery(tenantID, since).ToSql()
	if err != nil {
		return stats, fmt.Errorf("failed to build %s stats query: %w", l.table.name, err)
	}

	err = l.db.QueryRow(ctx, query, args...).Scan(
		&stats.TotalEvents, &stats.TotalQuantity, &stats.TodayEvents, &stats.TodayQuantity)
	if err != nil {
		return stats, fmt.Errorf("failed to get %s stats: %w", l.table.name, err)
	}

	return stats, nil
}

func (l movementLog) insert(ctx context.Context, columns []string, values []interface{}) (int64, error) {
	query, args, err := psql.
		Insert(l.table.name).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build %s insert: %w", l.table.name, err)
	}

	var id int64
	if err := l.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", l.table.name, err)
	}

	l.logger.DebugContext(ctx, "movement appended", slog.Int64("id", id))
	return id, nil
}

func baseColumns(t movementTable) []string {
	return []string{"variant_id", "size_id", "color_id", t.quantity, t.occurredAt, "user_id", "owner_user_id"}
}

func baseValues(m *domain.Movement) []interface{} {
	return []interface{}{
		m.Key.VariantID, m.Key.SizeID.Ptr(), m.Key.ColorID.Ptr(),
		m.Quantity, m.Timestamp, m.ActorUserID, m.OwnerUserID,
	}
}

// InflowRepository implements ports.InflowLog
type InflowRepository struct {
	movementLog
}

var _ ports.InflowLog = (*InflowRepository)(nil)

// NewInflowRepository creates the stock-in log repository
func NewInflowRepository(db ports.Database, logger *slog.Logger) *InflowRepository {
	return &InflowRepository{newMovementLog(db, stockInTable, logger)}
}

// Append inserts a stock-in event and returns its id
func (r *InflowRepository) Append(ctx context.Context, event *domain.InflowEvent) (int64, error) {
	columns := append(baseColumns(r.table), "cost_price", "supplier_id")
	values := append(baseValues(&event.Movement), event.UnitCost, event.SupplierID)
	return r.insert(ctx, columns, values)
}

// OutflowRepository implements ports.OutflowLog
type OutflowRepository struct {
	movementLog
}

var _ ports.OutflowLog = (*OutflowRepository)(nil)

// NewOutflowRepository creates the stock-out log repository
func NewOutflowRepository(db ports.Database, logger *slog.Logger) *OutflowRepository {
	return &OutflowRepository{newMovementLog(db, stockOutTable, logger)}
}

// Append inserts a stock-out event and returns its id
func (r *OutflowRepository) Append(ctx context.Context, event *domain.OutflowEvent) (int64, error) {
	columns := append(baseColumns(r.table), "reason")
	values := append(baseValues(&event.Movement), event.Reason)
	return r.insert(ctx, columns, values)
}

// AdjustmentRepository implements ports.AdjustmentLog
type AdjustmentRepository struct {
	movementLog
}

var _ ports.AdjustmentLog = (*AdjustmentRepository)(nil)

// NewAdjustmentRepository creates the stock adjustment log repository
func NewAdjustmentRepository(db ports.Database, logger *slog.Logger) *AdjustmentRepository {
	return &AdjustmentRepository{newMovementLog(db, stockAdjustmentTable, logger)}
}

// Append inserts an adjustment and returns its id
func (r *AdjustmentRepository) Append(ctx context.Context, event *domain.AdjustmentEvent) (int64, error) {
	columns := append(baseColumns(r.table), "adjustment_type", "reason")
	values := append(baseValues(&event.Movement), string(event.Direction), event.Reason)
	return r.insert(ctx, columns, values)
}
