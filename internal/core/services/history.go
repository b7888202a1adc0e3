// internal/core/services/history.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
)

const (
	// DefaultActivityDays is the window of DailyActivity when days is not positive
	DefaultActivityDays = 30
	// MaxActivityDays bounds the DailyActivity window
	MaxActivityDays = 366
)

// ListInflows returns one page of the tenant's stock-in history
func (s *MovementService) ListInflows(ctx context.Context, q domain.MovementQuery) (*ports.Page[domain.InflowEvent], error) {
	if q.Direction != "" {
		return nil, fmt.Errorf("%w: adjustment type only filters adjustments", domain.ErrInvalidArgument)
	}
	return historyPage(ctx, s.maxPageSize, q, s.inflow.List, s.inflow.Count)
}

// ListOutflows returns one page of the tenant's stock-out history
func (s *MovementService) ListOutflows(ctx context.Context, q domain.MovementQuery) (*ports.Page[domain.OutflowEvent], error) {
	if q.Direction != "" {
		return nil, fmt.Errorf("%w: adjustment type only filters adjustments", domain.ErrInvalidArgument)
	}
	return historyPage(ctx, s.maxPageSize, q, s.outflow.List, s.outflow.Count)
}

// ListAdjustments returns one page of the tenant's adjustments, optionally of one direction
func (s *MovementService) ListAdjustments(ctx context.Context, q domain.MovementQuery) (*ports.Page[domain.AdjustmentEvent], error) {
	return historyPage(ctx, s.maxPageSize, q, s.adjustments.List, s.adjustments.Count)
}

// GetInflow returns one stock-in event of the tenant
func (s *MovementService) GetInflow(ctx context.Context, tenantID, id int64) (*domain.InflowEvent, error) {
	return historyEvent(ctx, "stock-in", tenantID, id, s.inflow.Get)
}

// GetOutflow returns one stock-out event of the tenant
func (s *MovementService) GetOutflow(ctx context.Context, tenantID, id int64) (*domain.OutflowEvent, error) {
	return historyEvent(ctx, "stock-out", tenantID, id, s.outflow.Get)
}

// GetAdjustment returns one adjustment of the tenant
func (s *MovementService) GetAdjustment(ctx context.Context, tenantID, id int64) (*domain.AdjustmentEvent, error) {
	return historyEvent(ctx, "stock adjustment", tenantID, id, s.adjustments.Get)
}

// DailyActivity returns one entry per UTC day for the last days days, today
// included, with zero totals on days without events.
func (s *MovementService) DailyActivity(ctx context.Context, tenantID int64, days int) ([]domain.DailyActivity, error) {
	if days <= 0 {
		days = DefaultActivityDays
	}
	if days > MaxActivityDays {
		return nil, fmt.Errorf("%w: days cannot exceed %d", domain.ErrInvalidArgument, MaxActivityDays)
	}

	since := startOfDay(s.now().UTC()).AddDate(0, 0, -(days - 1))

	in, err := s.inflow.Daily(ctx, tenantID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stock-in: %w", err)
	}
	out, err := s.outflow.Daily(ctx, tenantID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stock-out: %w", err)
	}
	adj, err := s.adjustments.Daily(ctx, tenantID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily adjustments: %w", err)
	}

	activity := make([]domain.DailyActivity, days)
	index := make(map[string]int, days)
	for i := range activity {
		day := since.AddDate(0, 0, i)
		activity[i].Date = day
		index[day.Format(time.DateOnly)] = i
	}

	fill := func(totals []domain.DailyTotals, pick func(*domain.DailyActivity) *domain.DailyTotals) {
		for _, t := range totals {
			if i, ok := index[t.Date.UTC().Format(time.DateOnly)]; ok {
				*pick(&activity[i]) = t
			}
		}
	}
	fill(in, func(a *domain.DailyActivity) *domain.DailyTotals { return &a.StockIn })
	fill(out, func(a *domain.DailyActivity) *domain.DailyTotals { return &a.StockOut })
	fill(adj, func(a *domain.DailyActivity) *domain.DailyTotals { return &a.Adjustments })

	return activity, nil
}

func historyPage[E any](ctx context.Context, maxPageSize int, q domain.MovementQuery,
	list func(context.Context, domain.MovementQuery) ([]*E, error),
	count func(context.Context, domain.MovementQuery) (int64, error)) (*ports.Page[E], error) {

	if err := q.Validate(); err != nil {
		return nil, err
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}

	total, err := count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to count history: %w", err)
	}

	items := []*E{}
	if int64(q.Offset()) < total {
		if items, err = list(ctx, q); err != nil {
			return nil, fmt.Errorf("failed to list history: %w", err)
		}
	}

	return &ports.Page[E]{
		Items:      items,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalCount: total,
		TotalPages: int((total + int64(q.PageSize) - 1) / int64(q.PageSize)),
	}, nil
}

func historyEvent[E any](ctx context.Context, kind string, tenantID, id int64,
	get func(context.Context, int64, int64) (*E, error)) (*E, error) {

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", domain.ErrInvalidArgument)
	}

	event, err := get(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", kind, id, err)
	}
	if event == nil {
		return nil, fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	return event, nil
}
