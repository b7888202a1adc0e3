// internal/adapters/db/movement_history.go
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/stockledger/internal/core/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// historyColumns lists the shared columns first, then the log's own.
// Events of removed variants keep their history with empty names.
func (t movementTable) historyColumns() []string {
	columns := []string{
		"m.id", "m.variant_id", "m.size_id", "m.color_id", "m." + t.quantity, "m." + t.occurredAt,
		"m.user_id", "m.owner_user_id", "COALESCE(v.name, '')", "COALESCE(p.name, '')",
	}
	for _, c := range t.details {
		columns = append(columns, "m."+c)
	}
	return columns
}

func (t movementTable) fromHistory(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	return b.
		From(t.name + " m").
		LeftJoin("variants v ON v.id = m.variant_id").
		LeftJoin("products p ON p.id = v.product_id")
}

// filterHistory applies the tenant, archival, search, date and direction filters.
func (t movementTable) filterHistory(b squirrel.SelectBuilder, q domain.MovementQuery) squirrel.SelectBuilder {
	b = b.Where(squirrel.Eq{"m.owner_user_id": q.TenantID, "m.archived_at": nil})

	if q.Search != "" {
		pattern := "%" + likeEscaper.Replace(q.Search) + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"v.name": pattern},
			squirrel.ILike{"p.name": pattern},
		})
	}
	if q.From != nil {
		b = b.Where(squirrel.GtOrEq{"m." + t.occurredAt: *q.From})
	}
	if q.Until != nil {
		b = b.Where(squirrel.Lt{"m." + t.occurredAt: *q.Until})
	}
	if q.Direction != "" && t.direction != "" {
		b = b.Where(squirrel.Eq{"m." + t.direction: string(q.Direction)})
	}
	return b
}

func scanHistory(row pgx.Row, m *domain.Movement, details ...interface{}) error {
	var (
		variantID       int64
		sizeID, colorID *int64
	)

	dest := append([]interface{}{
		&m.ID, &variantID, &sizeID, &colorID, &m.Quantity, &m.Timestamp,
		&m.ActorUserID, &m.OwnerUserID, &m.VariantName, &m.ProductName,
	}, details...)
	if err := row.Scan(dest...); err != nil {
		return err
	}

	m.Key = scanKey(variantID, sizeID, colorID)
	return nil
}

func listHistory[E any](ctx context.Context, l movementLog, q domain.MovementQuery,
	scan func(pgx.Row) (*E, error)) ([]*E, error) {

	query, args, err := l.table.filterHistory(l.table.fromHistory(psql.Select(l.table.historyColumns()...)), q).
		OrderBy("m."+l.table.occurredAt+" DESC", "m.id DESC").
		Limit(uint64(q.PageSize)).
		Offset(q.Offset()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s history query: %w", l.table.name, err)
	}

	rows, err := l.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", l.table.name, err)
	}
	defer rows.Close()

	events := make([]*E, 0, q.PageSize)
	for rows.Next() {
		event, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s event: %w", l.table.name, err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s events: %w", l.table.name, classifyError(err))
	}

	return events, nil
}

func getHistory[E any](ctx context.Context, l movementLog, tenantID, id int64,
	scan func(pgx.Row) (*E, error)) (*E, error) {

	query, args, err := l.table.filterHistory(l.table.fromHistory(psql.Select(l.table.historyColumns()...)),
		domain.MovementQuery{TenantID: tenantID}).
		Where(squirrel.Eq{"m.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s event query: %w", l.table.name, err)
	}

	event, err := scan(l.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s event %d: %w", l.table.name, id, err)
	}
	return event, nil
}

// Count returns how many live events match the query, ignoring paging
func (l movementLog) Count(ctx context.Context, q domain.MovementQuery) (int64, error) {
	query, args, err := l.table.filterHistory(l.table.fromHistory(psql.Select("COUNT(*)")), q).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build %s count query: %w", l.table.name, err)
	}

	var count int64
	if err := l.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", l.table.name, err)
	}
	return count, nil
}

// Daily returns event counts and quantities per UTC day since the given time.
// Days without events are absent.
func (l movementLog) Daily(ctx context.Context, tenantID int64, since time.Time) ([]domain.DailyTotals, error) {
	t := l.table
	query, args, err := psql.
		Select(
			fmt.Sprintf("date_trunc('day', %s AT TIME ZONE 'UTC')", t.occurredAt),
			"COUNT(*)",
			fmt.Sprintf("COALESCE(SUM(%s), 0)", t.quantity),
		).
		From(t.name).
		Where(squirrel.Eq{"owner_user_id": tenantID, "archived_at": nil}).
		Where(squirrel.GtOrEq{t.occurredAt: since}).
		GroupBy("1").
		OrderBy("1").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s daily query: %w", t.name, err)
	}

	rows, err := l.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s daily totals: %w", t.name, err)
	}
	defer rows.Close()

	var days []domain.DailyTotals
	for rows.Next() {
		var d domain.DailyTotals
		if err := rows.Scan(&d.Date, &d.Events, &d.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan %s daily totals: %w", t.name, err)
		}
		d.Date = d.Date.UTC()
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s daily totals: %w", t.name, classifyError(err))
	}

	return days, nil
}

func scanInflow(row pgx.Row) (*domain.InflowEvent, error) {
	var e domain.InflowEvent
	if err := scanHistory(row, &e.Movement, &e.UnitCost, &e.SupplierID); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanOutflow(row pgx.Row) (*domain.OutflowEvent, error) {
	var e domain.OutflowEvent
	if err := scanHistory(row, &e.Movement, &e.Reason); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanAdjustment(row pgx.Row) (*domain.AdjustmentEvent, error) {
	var (
		e         domain.AdjustmentEvent
		direction string
	)
	if err := scanHistory(row, &e.Movement, &direction, &e.Reason); err != nil {
		return nil, err
	}
	e.Direction = domain.Direction(direction)
	return &e, nil
}

// List returns one page of stock-in events, newest first
func (r *InflowRepository) List(ctx context.Context, q domain.MovementQuery) ([]*domain.InflowEvent, error) {
	return listHistory(ctx, r.movementLog, q, scanInflow)
}

// Get returns the tenant's live stock-in event or nil
func (r *InflowRepository) Get(ctx context.Context, tenantID, id int64) (*domain.InflowEvent, error) {
	return getHistory(ctx, r.movementLog, tenantID, id, scanInflow)
}

// List returns one page of stock-out events, newest first
func (r *OutflowRepository) List(ctx context.Context, q domain.MovementQuery) ([]*domain.OutflowEvent, error) {
	return listHistory(ctx, r.movementLog, q, scanOutflow)
}

// Get returns the tenant's live stock-out event or nil
func (r *OutflowRepository) Get(ctx context.Context, tenantID, id int64) (*domain.OutflowEvent, error) {
	return getHistory(ctx, r.movementLog, tenantID, id, scanOutflow)
}

// List returns one page of adjustments, newest first
func (r *AdjustmentRepository) List(ctx context.Context, q domain.MovementQuery) ([]*domain.AdjustmentEvent, error) {
	return listHistory(ctx, r.movementLog, q, scanAdjustment)
}

// Get returns the tenant's live adjustment or nil
func (r *AdjustmentRepository) Get(ctx context.Context, tenantID, id int64) (*domain.AdjustmentEvent, error) {
	return getHistory(ctx, r.movementLog, tenantID, id, scanAdjustment)
}
