// internal/core/services/aggregator.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
)

// StockAggregator derives current quantities from the three movement logs
type StockAggregator struct {
	inflow      ports.InflowLog
	outflow     ports.OutflowLog
	adjustments ports.AdjustmentLog
	snapshot    ports.SnapshotReader
	logger      *slog.Logger
}

// NewStockAggregator creates a new aggregator. snapshot may be nil, in which case the
// three sums are read independently.
func NewStockAggregator(inflow ports.InflowLog, outflow ports.OutflowLog, adjustments ports.AdjustmentLog,
	snapshot ports.SnapshotReader, logger *slog.Logger) *StockAggregator {
	return &StockAggregator{
		inflow:      inflow,
		outflow:     outflow,
		adjustments: adjustments,
		snapshot:    snapshot,
		logger:      logger.With(slog.String("service", "aggregator")),
	}
}

// Aggregate returns one row per key present in any log, ordered by key.
func (a *StockAggregator) Aggregate(ctx context.Context, tenantID int64, filter *domain.StockKey) ([]domain.AggregatedStock, error) {
	var in, out, adj domain.PartialSums

	read := func(ctx context.Context) error {
		var err error
		if in, err = a.inflow.SumByKey(ctx, tenantID, filter); err != nil {
			return fmt.Errorf("failed to sum stock-in: %w", err)
		}
		if out, err = a.outflow.SumByKey(ctx, tenantID, filter); err != nil {
			return fmt.Errorf("failed to sum stock-out: %w", err)
		}
		if adj, err = a.adjustments.SumByKey(ctx, tenantID, filter); err != nil {
			return fmt.Errorf("failed to sum adjustments: %w", err)
		}
		return nil
	}

	var err error
	if a.snapshot != nil {
		err = a.snapshot.ReadSnapshot(ctx, read)
	} else {
		err = read(ctx)
	}
	if err != nil {
		return nil, err
	}

	stocks := MergePartialSums(in, out, adj)

	a.logger.DebugContext(ctx, "aggregated stock",
		slog.Int64("tenant_id", tenantID),
		slog.Int("keys", len(stocks)))

	return stocks, nil
}

// ListPositive keeps only keys with a strictly positive quantity.
func (a *StockAggregator) ListPositive(ctx context.Context, tenantID int64, filter *domain.StockKey) ([]domain.AggregatedStock, error) {
	stocks, err := a.Aggregate(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	positive := stocks[:0]
	for _, s := range stocks {
		if s.CurrentQuantity > 0 {
			positive = append(positive, s)
		}
	}
	return positive, nil
}

// GetOne returns the exact key whatever its sign, or domain.ErrNotFound.
func (a *StockAggregator) GetOne(ctx context.Context, tenantID int64, key domain.StockKey) (*domain.AggregatedStock, error) {
	stocks, err := a.Aggregate(ctx, tenantID, &key)
	if err != nil {
		return nil, err
	}

	for i := range stocks {
		if stocks[i].Key == key {
			return &stocks[i], nil
		}
	}
	return nil, fmt.Errorf("stock %s: %w", key, domain.ErrNotFound)
}

// MergePartialSums is the full outer union of the three partial sums.
// A key missing from a log contributes zero for that log.
func MergePartialSums(in, out, adj domain.PartialSums) []domain.AggregatedStock {
	merged := make(map[domain.StockKey]*domain.AggregatedStock, len(in)+len(out)+len(adj))

	row := func(k domain.StockKey) *domain.AggregatedStock {
		r, ok := merged[k]
		if !ok {
			r = &domain.AggregatedStock{Key: k}
			merged[k] = r
		}
		return r
	}

	for k, v := range in {
		row(k).TotalIn += v
	}
	for k, v := range out {
		row(k).TotalOut += v
	}
	for k, v := range adj {
		row(k).NetAdjustment += v
	}

	result := make([]domain.AggregatedStock, 0, len(merged))
	for _, r := range merged {
		r.Recompute()
		result = append(result, *r)
	}

	slices.SortFunc(result, func(x, y domain.AggregatedStock) int {
		return x.Key.Compare(y.Key)
	})

	return result
}
