// internal/adapters/redis_adapter/orphan_counter.go
package redis_a

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ammerola/stockledger/internal/core/ports"
)

// OrphanCounter keeps a rolling per-tenant count of stock keys whose variant
// could not be resolved while building inventory views.
type OrphanCounter struct {
	cache  ports.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.OrphanRecorder = (*OrphanCounter)(nil)

// NewOrphanCounter creates a counter whose keys expire ttl after the last increment
func NewOrphanCounter(cache ports.CacheRepository, ttl time.Duration, logger *slog.Logger) *OrphanCounter {
	return &OrphanCounter{
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "orphan_counter")),
	}
}

// RecordOrphans adds count to the tenant's counter
func (o *OrphanCounter) RecordOrphans(ctx context.Context, tenantID int64, count int) error {
	if count <= 0 {
		return nil
	}

	key := orphanKey(tenantID)
	total, err := o.cache.IncrementBy(ctx, key, int64(count))
	if err != nil {
		return fmt.Errorf("failed to record orphans: %w", err)
	}
	if err := o.cache.Expire(ctx, key, o.ttl); err != nil {
		return fmt.Errorf("failed to set orphan counter expiry: %w", err)
	}

	o.logger.DebugContext(ctx, "orphaned keys recorded",
		slog.Int64("tenant_id", tenantID),
		slog.Int("count", count),
		slog.Int64("total", total))
	return nil
}

// Count returns the tenant's current counter value
func (o *OrphanCounter) Count(ctx context.Context, tenantID int64) (int64, error) {
	var total int64
	err := o.cache.Get(ctx, orphanKey(tenantID), &total)
	if errors.Is(err, ErrCacheMiss) {
		return 0, nil
	}
	return total, err
}

func orphanKey(tenantID int64) string {
	return BuildKey(PrefixOrphans, strconv.FormatInt(tenantID, 10))
}
