// internal/core/services/movements.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
)

// MovementService appends events to the movement logs after an ownership check
// and reads their history back
type MovementService struct {
	inflow      ports.InflowLog
	outflow     ports.OutflowLog
	adjustments ports.AdjustmentLog
	resolver    ports.DimensionResolver
	notifier    ports.LowStockNotifier
	maxPageSize int
	now         func() time.Time
	logger      *slog.Logger
}

var _ ports.MovementService = (*MovementService)(nil)

// NewMovementService creates a new movement service. notifier may be nil.
func NewMovementService(inflow ports.InflowLog, outflow ports.OutflowLog, adjustments ports.AdjustmentLog,
	resolver ports.DimensionResolver, notifier ports.LowStockNotifier, logger *slog.Logger, opts ...MovementOption) *MovementService {
	s := &MovementService{
		inflow:      inflow,
		outflow:     outflow,
		adjustments: adjustments,
		resolver:    resolver,
		notifier:    notifier,
		maxPageSize: DefaultMaxPageSize,
		now:         time.Now,
		logger:      logger.With(slog.String("service", "movements")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordInflow appends a stock-in event
func (s *MovementService) RecordInflow(ctx context.Context, tenantID int64, event *domain.InflowEvent) (int64, error) {
	if err := s.prepare(ctx, tenantID, &event.Movement); err != nil {
		return 0, err
	}
	if err := event.Validate(); err != nil {
		return 0, err
	}

	id, err := s.inflow.Append(ctx, event)
	if err != nil {
		return 0, fmt.Errorf("failed to record stock-in: %w", err)
	}
	event.ID = id

	s.logger.InfoContext(ctx, "recorded stock-in",
		slog.Int64("id", id),
		slog.String("key", event.Key.String()),
		slog.Int("quantity", event.Quantity))

	return id, nil
}

// RecordOutflow appends a stock-out event
func (s *MovementService) RecordOutflow(ctx context.Context, tenantID int64, event *domain.OutflowEvent) (int64, error) {
	if err := s.prepare(ctx, tenantID, &event.Movement); err != nil {
		return 0, err
	}
	if err := event.Validate(); err != nil {
		return 0, err
	}

	id, err := s.outflow.Append(ctx, event)
	if err != nil {
		return 0, fmt.Errorf("failed to record stock-out: %w", err)
	}
	event.ID = id

	s.logger.InfoContext(ctx, "recorded stock-out",
		slog.Int64("id", id),
		slog.String("key", event.Key.String()),
		slog.Int("quantity", event.Quantity))

	s.notify(ctx, tenantID, event.Key)
	return id, nil
}

// RecordAdjustment appends a stock adjustment
func (s *MovementService) RecordAdjustment(ctx context.Context, tenantID int64, event *domain.AdjustmentEvent) (int64, error) {
	if err := s.prepare(ctx, tenantID, &event.Movement); err != nil {
		return 0, err
	}
	if err := event.Validate(); err != nil {
		return 0, err
	}

	id, err := s.adjustments.Append(ctx, event)
	if err != nil {
		return 0, fmt.Errorf("failed to record stock adjustment: %w", err)
	}
	event.ID = id

	s.logger.InfoContext(ctx, "recorded stock adjustment",
		slog.Int64("id", id),
		slog.String("key", event.Key.String()),
		slog.String("direction", string(event.Direction)),
		slog.Int("quantity", event.Quantity))

	if event.Direction == domain.DirectionDecrease {
		s.notify(ctx, tenantID, event.Key)
	}
	return id, nil
}

// prepare checks that the tenant owns the live variant and stamps owner and time.
func (s *MovementService) prepare(ctx context.Context, tenantID int64, m *domain.Movement) error {
	variant, err := s.resolver.ResolveVariant(ctx, m.Key.VariantID)
	if err != nil {
		return fmt.Errorf("failed to resolve variant: %w", err)
	}
	if !variant.OwnedBy(tenantID) {
		return fmt.Errorf("variant %d: %w", m.Key.VariantID, domain.ErrNotOwned)
	}

	m.OwnerUserID = tenantID
	m.PrepareForStorage(s.now())
	return nil
}

func (s *MovementService) notify(ctx context.Context, tenantID int64, key domain.StockKey) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyPossibleLowStock(ctx, tenantID, key); err != nil {
		s.logger.WarnContext(ctx, "failed to enqueue low stock check",
			slog.String("key", key.String()),
			"err", err)
	}
}
