// internal/core/ports/inventory_service.go
package ports

import (
	"context"

	"github.com/ammerola/stockledger/internal/core/domain"
)

// InventoryService defines the read side and threshold writes of the inventory view.
type InventoryService interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	GetDetails(ctx context.Context, tenantID int64, key domain.StockKey) (*domain.InventoryRow, error)
	UpdateReorderLevel(ctx context.Context, tenantID, actorUserID int64, key domain.StockKey, reorderLevel int) (*domain.ThresholdRecord, error)
	LowStock(ctx context.Context, tenantID int64, limit int) ([]*domain.InventoryRow, error)
	DashboardStats(ctx context.Context, tenantID int64) (*domain.DashboardStats, error)
}

// MovementService defines the append and history paths of the three logs.
// History reads are scoped to the tenant; a foreign event is ErrNotFound.
type MovementService interface {
	RecordInflow(ctx context.Context, tenantID int64, event *domain.InflowEvent) (int64, error)
	RecordOutflow(ctx context.Context, tenantID int64, event *domain.OutflowEvent) (int64, error)
	RecordAdjustment(ctx context.Context, tenantID int64, event *domain.AdjustmentEvent) (int64, error)

	ListInflows(ctx context.Context, query domain.MovementQuery) (*Page[domain.InflowEvent], error)
	ListOutflows(ctx context.Context, query domain.MovementQuery) (*Page[domain.OutflowEvent], error)
	ListAdjustments(ctx context.Context, query domain.MovementQuery) (*Page[domain.AdjustmentEvent], error)
	GetInflow(ctx context.Context, tenantID, id int64) (*domain.InflowEvent, error)
	GetOutflow(ctx context.Context, tenantID, id int64) (*domain.OutflowEvent, error)
	GetAdjustment(ctx context.Context, tenantID, id int64) (*domain.AdjustmentEvent, error)
	DailyActivity(ctx context.Context, tenantID int64, days int) ([]domain.DailyActivity, error)
}

// LowStockNotifier is told about keys that may have crossed their reorder level.
type LowStockNotifier interface {
	NotifyPossibleLowStock(ctx context.Context, tenantID int64, key domain.StockKey) error
}

// ListParams holds parameters for listing inventory
type ListParams struct {
	TenantID int64
	Search   string
	Page     int
	PageSize int
}

// ListResult holds one page of the inventory view
type ListResult struct {
	Items      []*domain.InventoryRow `json:"items"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	TotalCount int64                  `json:"total_count"`
	TotalPages int                    `json:"total_pages"`
}

// Page is one page of movement history
type Page[T any] struct {
	Items      []*T  `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}
