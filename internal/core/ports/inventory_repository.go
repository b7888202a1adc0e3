// internal/core/ports/inventory_repository.go
package ports

import (
	"context"
	"time"

	"github.com/ammerola/stockledger/internal/core/domain"
)

// InflowLog is the append-only stock-in log. Get returns nil, nil when the
// event does not exist, is archived or belongs to another tenant.
type InflowLog interface {
	Append(ctx context.Context, event *domain.InflowEvent) (int64, error)
	SumByKey(ctx context.Context, tenantID int64, filter *domain.StockKey) (domain.PartialSums, error)
	Stats(ctx context.Context, tenantID int64, since time.Time) (domain.MovementStats, error)
	List(ctx context.Context, query domain.MovementQuery) ([]*domain.InflowEvent, error)
	Count(ctx context.Context, query domain.MovementQuery) (int64, error)
	Get(ctx context.Context, tenantID, id int64) (*domain.InflowEvent, error)
	Daily(ctx context.Context, tenantID int64, since time.Time) ([]domain.DailyTotals, error)
}

// OutflowLog is the append-only stock-out log.
type OutflowLog interface {
	Append(ctx context.Context, event *domain.OutflowEvent) (int64, error)
	SumByKey(ctx context.Context, tenantID int64, filter *domain.StockKey) (domain.PartialSums, error)
	Stats(ctx context.Context, tenantID int64, since time.Time) (domain.MovementStats, error)
	List(ctx context.Context, query domain.MovementQuery) ([]*domain.OutflowEvent, error)
	Count(ctx context.Context, query domain.MovementQuery) (int64, error)
	Get(ctx context.Context, tenantID, id int64) (*domain.OutflowEvent, error)
	Daily(ctx context.Context, tenantID int64, since time.Time) ([]domain.DailyTotals, error)
}

// AdjustmentLog is the append-only adjustment log. SumByKey returns signed sums.
type AdjustmentLog interface {
	Append(ctx context.Context, event *domain.AdjustmentEvent) (int64, error)
	SumByKey(ctx context.Context, tenantID int64, filter *domain.StockKey) (domain.PartialSums, error)
	Stats(ctx context.Context, tenantID int64, since time.Time) (domain.MovementStats, error)
	List(ctx context.Context, query domain.MovementQuery) ([]*domain.AdjustmentEvent, error)
	Count(ctx context.Context, query domain.MovementQuery) (int64, error)
	Get(ctx context.Context, tenantID, id int64) (*domain.AdjustmentEvent, error)
	Daily(ctx context.Context, tenantID int64, since time.Time) ([]domain.DailyTotals, error)
}

// ThresholdStore persists reorder levels. Get returns nil, nil when no live record exists.
// ListActive returns the tenant's live records with a positive reorder level on live variants.
type ThresholdStore interface {
	Get(ctx context.Context, key domain.StockKey) (*domain.ThresholdRecord, error)
	ListByVariants(ctx context.Context, variantIDs []int64) (map[domain.StockKey]*domain.ThresholdRecord, error)
	ListActive(ctx context.Context, tenantID int64) (map[domain.StockKey]*domain.ThresholdRecord, error)
	Upsert(ctx context.Context, key domain.StockKey, reorderLevel int, actorUserID int64) (*domain.ThresholdRecord, error)
}

// DimensionResolver looks up catalog display data. Single lookups return nil, nil
// when the id does not exist; batch lookups omit missing ids.
type DimensionResolver interface {
	ResolveVariant(ctx context.Context, id int64) (*domain.VariantInfo, error)
	ResolveSize(ctx context.Context, id int64) (*domain.SizeInfo, error)
	ResolveColor(ctx context.Context, id int64) (*domain.ColorInfo, error)
	Variants(ctx context.Context, ids []int64) (map[int64]*domain.VariantInfo, error)
	VariantStates(ctx context.Context, ids []int64) (map[int64]domain.VariantState, error)
	Sizes(ctx context.Context, ids []int64) (map[int64]*domain.SizeInfo, error)
	Colors(ctx context.Context, ids []int64) (map[int64]*domain.ColorInfo, error)
	CountActiveVariants(ctx context.Context, ownerID int64) (int64, error)
}

// SnapshotReader runs fn against one consistent read snapshot of the logs.
type SnapshotReader interface {
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrphanRecorder observes keys dropped because their variant is missing, archived or foreign.
type OrphanRecorder interface {
	RecordOrphans(ctx context.Context, tenantID int64, count int) error
}
