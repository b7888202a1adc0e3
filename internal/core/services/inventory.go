// internal/core/services/inventory.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
)

// InventoryService builds the inventory view on top of the aggregator
type InventoryService struct {
	aggregator  *StockAggregator
	thresholds  ports.ThresholdStore
	resolver    ports.DimensionResolver
	orphans     ports.OrphanRecorder
	maxPageSize int
	now         func() time.Time
	logger      *slog.Logger
}

// Statically assert that *InventoryService implements the InventoryService interface.
var _ ports.InventoryService = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service. orphans may be nil.
func NewInventoryService(aggregator *StockAggregator, thresholds ports.ThresholdStore, resolver ports.DimensionResolver,
	orphans ports.OrphanRecorder, logger *slog.Logger, opts ...InventoryOption) *InventoryService {
	s := &InventoryService{
		aggregator:  aggregator,
		thresholds:  thresholds,
		resolver:    resolver,
		orphans:     orphans,
		maxPageSize: DefaultMaxPageSize,
		now:         time.Now,
		logger:      logger.With(slog.String("service", "inventory")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of positive stock rows matching the search term
func (s *InventoryService) List(ctx context.Context, params ports.ListParams) (*ports.ListResult, error) {
	if params.Page < 1 {
		return nil, fmt.Errorf("%w: page must be at least 1", domain.ErrInvalidArgument)
	}
	if params.PageSize < 1 {
		return nil, fmt.Errorf("%w: page_size must be at least 1", domain.ErrInvalidArgument)
	}
	if params.PageSize > s.maxPageSize {
		params.PageSize = s.maxPageSize
	}

	stocks, err := s.aggregator.ListPositive(ctx, params.TenantID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	rows, err := s.assemble(ctx, params.TenantID, stocks)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	matched := rows[:0]
	for _, row := range rows {
		if row.MatchesSearch(params.Search) {
			matched = append(matched, row)
		}
	}

	totalCount := len(matched)
	offset := (params.Page - 1) * params.PageSize

	items := []*domain.InventoryRow{}
	if offset < totalCount {
		end := min(offset+params.PageSize, totalCount)
		items = matched[offset:end]
	}

	totalPages := totalCount / params.PageSize
	if totalCount%params.PageSize > 0 {
		totalPages++
	}

	s.logger.DebugContext(ctx, "listed inventory",
		slog.Int64("tenant_id", params.TenantID),
		slog.String("search", params.Search),
		slog.Int("page", params.Page),
		slog.Int("total", totalCount))

	return &ports.ListResult{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: int64(totalCount),
		TotalPages: totalPages,
	}, nil
}

// GetDetails returns the row for the exact key regardless of sign
func (s *InventoryService) GetDetails(ctx context.Context, tenantID int64, key domain.StockKey) (*domain.InventoryRow, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	variant, err := s.resolver.ResolveVariant(ctx, key.VariantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve variant: %w", err)
	}
	if !variant.OwnedBy(tenantID) {
		return nil, fmt.Errorf("stock %s: %w", key, domain.ErrNotFound)
	}

	stock, err := s.aggregator.GetOne(ctx, tenantID, key)
	if err != nil {
		return nil, err
	}

	var size *domain.SizeInfo
	if id, ok := key.SizeID.ID(); ok {
		if size, err = s.resolver.ResolveSize(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to resolve size: %w", err)
		}
	}

	var color *domain.ColorInfo
	if id, ok := key.ColorID.ID(); ok {
		if color, err = s.resolver.ResolveColor(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to resolve color: %w", err)
		}
	}

	threshold, err := s.thresholds.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get threshold: %w", err)
	}

	return domain.NewInventoryRow(*stock, variant, size, color, threshold, s.now()), nil
}

// UpdateReorderLevel upserts the threshold of a key owned by the tenant
func (s *InventoryService) UpdateReorderLevel(ctx context.Context, tenantID, actorUserID int64, key domain.StockKey,
	reorderLevel int) (*domain.ThresholdRecord, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	if err := s.verifyOwnership(ctx, tenantID, key.VariantID); err != nil {
		return nil, err
	}

	if reorderLevel < 0 {
		return nil, fmt.Errorf("%w: reorder_level cannot be negative", domain.ErrInvalidArgument)
	}

	record, err := s.thresholds.Upsert(ctx, key, reorderLevel, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to update reorder level: %w", err)
	}

	s.logger.InfoContext(ctx, "updated reorder level",
		slog.Int64("tenant_id", tenantID),
		slog.String("key", key.String()),
		slog.Int("reorder_level", reorderLevel))

	return record, nil
}

// LowStock returns keys at or below a positive reorder level, lowest quantity first
func (s *InventoryService) LowStock(ctx context.Context, tenantID int64, limit int) ([]*domain.InventoryRow, error) {
	if limit <= 0 {
		limit = DefaultLowStockLimit
	}

	rows, err := s.lowStockRows(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// DashboardStats summarizes movements and stock health of the tenant
func (s *InventoryService) DashboardStats(ctx context.Context, tenantID int64) (*domain.DashboardStats, error) {
	now := s.now()
	since := startOfDay(now)

	stats := &domain.DashboardStats{GeneratedAt: now}

	var err error
	if stats.StockIn, err = s.aggregator.inflow.Stats(ctx, tenantID, since); err != nil {
		return nil, fmt.Errorf("failed to get stock-in stats: %w", err)
	}
	if stats.StockOut, err = s.aggregator.outflow.Stats(ctx, tenantID, since); err != nil {
		return nil, fmt.Errorf("failed to get stock-out stats: %w", err)
	}
	if stats.Adjustments, err = s.aggregator.adjustments.Stats(ctx, tenantID, since); err != nil {
		return nil, fmt.Errorf("failed to get adjustment stats: %w", err)
	}

	if stats.ActiveVariants, err = s.resolver.CountActiveVariants(ctx, tenantID); err != nil {
		return nil, fmt.Errorf("failed to count active variants: %w", err)
	}

	stocks, err := s.stocksWithThresholds(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	rows, orphaned, err := s.assembleCounting(ctx, tenantID, stocks)
	if err != nil {
		return nil, err
	}

	stats.OrphanedKeys = orphaned
	for _, row := range rows {
		if row.CurrentQuantity > 0 {
			stats.TrackedKeys++
		}
		if row.IsLowStock() {
			stats.LowStockCount++
		}
	}

	return stats, nil
}

// stocksWithThresholds aggregates every key with events and adds keys that only
// have an active threshold, at quantity zero.
func (s *InventoryService) stocksWithThresholds(ctx context.Context, tenantID int64) ([]domain.AggregatedStock, error) {
	stocks, err := s.aggregator.Aggregate(ctx, tenantID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stock: %w", err)
	}

	active, err := s.thresholds.ListActive(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active thresholds: %w", err)
	}

	seen := make(map[domain.StockKey]struct{}, len(stocks))
	for _, st := range stocks {
		seen[st.Key] = struct{}{}
	}
	for key := range active {
		if _, ok := seen[key]; !ok {
			stocks = append(stocks, domain.AggregatedStock{Key: key})
		}
	}
	return stocks, nil
}

func (s *InventoryService) lowStockRows(ctx context.Context, tenantID int64) ([]*domain.InventoryRow, error) {
	stocks, err := s.stocksWithThresholds(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	rows, err := s.assemble(ctx, tenantID, stocks)
	if err != nil {
		return nil, err
	}

	low := rows[:0]
	for _, row := range rows {
		if row.IsLowStock() {
			low = append(low, row)
		}
	}

	// rows are already in display order; a stable sort keeps it for equal quantities
	slices.SortStableFunc(low, func(a, b *domain.InventoryRow) int {
		switch {
		case a.CurrentQuantity < b.CurrentQuantity:
			return -1
		case a.CurrentQuantity > b.CurrentQuantity:
			return 1
		}
		return 0
	})

	return low, nil
}

func (s *InventoryService) verifyOwnership(ctx context.Context, tenantID, variantID int64) error {
	variant, err := s.resolver.ResolveVariant(ctx, variantID)
	if err != nil {
		return fmt.Errorf("failed to resolve variant: %w", err)
	}
	if !variant.OwnedBy(tenantID) {
		return fmt.Errorf("variant %d: %w", variantID, domain.ErrNotOwned)
	}
	return nil
}

func (s *InventoryService) assemble(ctx context.Context, tenantID int64, stocks []domain.AggregatedStock) ([]*domain.InventoryRow, error) {
	rows, _, err := s.assembleCounting(ctx, tenantID, stocks)
	return rows, err
}

// assembleCounting joins stock rows with catalog data and thresholds and returns them in
// display order. Keys whose variant is missing, archived or foreign are dropped and counted.
func (s *InventoryService) assembleCounting(ctx context.Context, tenantID int64,
	stocks []domain.AggregatedStock) ([]*domain.InventoryRow, int, error) {
	if len(stocks) == 0 {
		return []*domain.InventoryRow{}, 0, nil
	}

	variantIDs, sizeIDs, colorIDs := collectIDs(stocks)

	variants, err := s.resolver.Variants(ctx, variantIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve variants: %w", err)
	}
	sizes, err := s.resolver.Sizes(ctx, sizeIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve sizes: %w", err)
	}
	colors, err := s.resolver.Colors(ctx, colorIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve colors: %w", err)
	}
	thresholds, err := s.thresholds.ListByVariants(ctx, variantIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load thresholds: %w", err)
	}

	now := s.now()
	rows := make([]*domain.InventoryRow, 0, len(stocks))
	orphaned := 0

	for _, stock := range stocks {
		variant := variants[stock.Key.VariantID]
		if !variant.OwnedBy(tenantID) {
			orphaned++
			continue
		}

		var size *domain.SizeInfo
		if id, ok := stock.Key.SizeID.ID(); ok {
			size = sizes[id]
		}
		var color *domain.ColorInfo
		if id, ok := stock.Key.ColorID.ID(); ok {
			color = colors[id]
		}

		rows = append(rows, domain.NewInventoryRow(stock, variant, size, color, thresholds[stock.Key], now))
	}

	if orphaned > 0 {
		s.recordOrphans(ctx, tenantID, orphaned)
	}

	slices.SortFunc(rows, compareRows)

	return rows, orphaned, nil
}

func (s *InventoryService) recordOrphans(ctx context.Context, tenantID int64, count int) {
	s.logger.WarnContext(ctx, "dropped stock keys without a live owned variant",
		slog.Int64("tenant_id", tenantID),
		slog.Int("count", count))

	if s.orphans == nil {
		return
	}
	if err := s.orphans.RecordOrphans(ctx, tenantID, count); err != nil {
		s.logger.WarnContext(ctx, "failed to record orphaned keys", "err", err)
	}
}

// compareRows orders by product, variant, size and color name, then by key.
func compareRows(a, b *domain.InventoryRow) int {
	an, bn := a.SortNames(), b.SortNames()
	for i := range an {
		if an[i] < bn[i] {
			return -1
		}
		if an[i] > bn[i] {
			return 1
		}
	}
	return a.Key.Compare(b.Key)
}

func collectIDs(stocks []domain.AggregatedStock) (variants, sizes, colors []int64) {
	seenV := make(map[int64]struct{})
	seenS := make(map[int64]struct{})
	seenC := make(map[int64]struct{})

	for _, st := range stocks {
		if _, ok := seenV[st.Key.VariantID]; !ok {
			seenV[st.Key.VariantID] = struct{}{}
			variants = append(variants, st.Key.VariantID)
		}
		if id, ok := st.Key.SizeID.ID(); ok {
			if _, seen := seenS[id]; !seen {
				seenS[id] = struct{}{}
				sizes = append(sizes, id)
			}
		}
		if id, ok := st.Key.ColorID.ID(); ok {
			if _, seen := seenC[id]; !seen {
				seenC[id] = struct{}{}
				colors = append(colors, id)
			}
		}
	}
	return variants, sizes, colors
}
