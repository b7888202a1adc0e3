// internal/workers/low_stock_processor.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/hibiken/asynq"

	redis_a "github.com/ammerola/stockledger/internal/adapters/redis_adapter"
	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
	"github.com/ammerola/stockledger/internal/pkg/logger"
)

// PrefixLowStockAlert marks keys that have already raised an alert
const PrefixLowStockAlert redis_a.CacheKeyPrefix = "inventory:low_stock_alert"

// DefaultAlertTTL bounds how long an alert stays suppressed without a recovery
const DefaultAlertTTL = 24 * time.Hour

// LowStockAlert is what the processor reports when a key reaches its reorder level
type LowStockAlert struct {
	TenantID     int64           `json:"tenant_id"`
	Key          domain.StockKey `json:"key"`
	ProductName  string          `json:"product_name"`
	VariantName  string          `json:"variant_name"`
	Quantity     int64           `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	RaisedAt     time.Time       `json:"raised_at"`
}

// LowStockProcessor re-derives the quantity of one key and raises an alert once
// per crossing of the reorder level
type LowStockProcessor struct {
	inventory ports.InventoryService
	cache     ports.CacheRepository
	alertTTL  time.Duration
	logger    *slog.Logger
}

// NewLowStockProcessor creates a new low stock processor
func NewLowStockProcessor(inventory ports.InventoryService, cache ports.CacheRepository, alertTTL time.Duration,
	logger *slog.Logger) *LowStockProcessor {
	if alertTTL <= 0 {
		alertTTL = DefaultAlertTTL
	}
	return &LowStockProcessor{
		inventory: inventory,
		cache:     cache,
		alertTTL:  alertTTL,
		logger:    logger.With(slog.String("processor", "low_stock")),
	}
}

// ProcessScan handles TypeLowStockScan tasks
func (p *LowStockProcessor) ProcessScan(ctx context.Context, t *asynq.Task) error {
	var payload LowStockScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	if taskID, ok := asynq.GetTaskID(ctx); ok {
		ctx = logger.WithTaskID(ctx, taskID)
	}
	ctx = logger.WithTenant(ctx, payload.TenantID, payload.TenantID)

	row, err := p.inventory.GetDetails(ctx, payload.TenantID, payload.Key)
	switch {
	case errors.Is(err, domain.ErrNotOwned), errors.Is(err, domain.ErrNotFound):
		// variant archived or events removed since the write
		p.logger.DebugContext(ctx, "low stock scan skipped",
			slog.String("key", payload.Key.String()),
			slog.String("reason", err.Error()))
		return nil
	case err != nil:
		return fmt.Errorf("failed to load inventory row: %w", err)
	}

	alertKey := redis_a.BuildKey(PrefixLowStockAlert, strconv.FormatInt(payload.TenantID, 10), payload.Key.String())

	if !row.IsLowStock() {
		if err := p.cache.Delete(ctx, alertKey); err != nil {
			p.logger.WarnContext(ctx, "failed to clear low stock alert", slog.String("error", err.Error()))
		}
		return nil
	}

	var previous LowStockAlert
	err = p.cache.Get(ctx, alertKey, &previous)
	if err == nil {
		p.logger.DebugContext(ctx, "low stock alert already raised",
			slog.String("key", payload.Key.String()),
			slog.Time("raised_at", previous.RaisedAt))
		return nil
	}
	if !errors.Is(err, redis_a.ErrCacheMiss) {
		p.logger.WarnContext(ctx, "failed to read low stock alert", slog.String("error", err.Error()))
	}

	alert := LowStockAlert{
		TenantID:     payload.TenantID,
		Key:          payload.Key,
		ProductName:  row.ProductName,
		VariantName:  row.VariantName,
		Quantity:     row.CurrentQuantity,
		ReorderLevel: row.ReorderLevel,
		RaisedAt:     time.Now().UTC(),
	}

	p.logger.WarnContext(ctx, "stock at or below reorder level",
		slog.String("key", payload.Key.String()),
		slog.String("product", alert.ProductName),
		slog.String("variant", alert.VariantName),
		slog.Int64("quantity", alert.Quantity),
		slog.Int("reorder_level", alert.ReorderLevel))

	if err := p.cache.SetWithTTL(ctx, alertKey, alert, p.alertTTL); err != nil {
		p.logger.WarnContext(ctx, "failed to store low stock alert", slog.String("error", err.Error()))
	}
	return nil
}
