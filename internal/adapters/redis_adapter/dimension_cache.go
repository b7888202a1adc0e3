// internal/adapters/redis_adapter/dimension_cache.go
package redis_a

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
)

// CachedDimensionResolver caches catalog display data in front of another resolver.
// ResolveVariant, VariantStates and CountActiveVariants always reach the underlying
// resolver, and Variants overlays live owner and archival state on cached names,
// so ownership and archival checks never see cached data.
type CachedDimensionResolver struct {
	next   ports.DimensionResolver
	cache  ports.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.DimensionResolver = (*CachedDimensionResolver)(nil)

// NewCachedDimensionResolver wraps next with a read-through cache
func NewCachedDimensionResolver(next ports.DimensionResolver, cache ports.CacheRepository, ttl time.Duration, logger *slog.Logger) *CachedDimensionResolver {
	return &CachedDimensionResolver{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "dimension_cache")),
	}
}

func (r *CachedDimensionResolver) ResolveVariant(ctx context.Context, id int64) (*domain.VariantInfo, error) {
	return r.next.ResolveVariant(ctx, id)
}

func (r *CachedDimensionResolver) CountActiveVariants(ctx context.Context, ownerID int64) (int64, error) {
	return r.next.CountActiveVariants(ctx, ownerID)
}

func (r *CachedDimensionResolver) ResolveSize(ctx context.Context, id int64) (*domain.SizeInfo, error) {
	sizes, err := r.Sizes(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	return sizes[id], nil
}

func (r *CachedDimensionResolver) ResolveColor(ctx context.Context, id int64) (*domain.ColorInfo, error) {
	colors, err := r.Colors(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	return colors[id], nil
}

func (r *CachedDimensionResolver) VariantStates(ctx context.Context, ids []int64) (map[int64]domain.VariantState, error) {
	return r.next.VariantStates(ctx, ids)
}

// Variants serves names from the cache. Ids missing from the live state query
// are dropped even when still cached.
func (r *CachedDimensionResolver) Variants(ctx context.Context, ids []int64) (map[int64]*domain.VariantInfo, error) {
	states, err := r.next.VariantStates(ctx, ids)
	if err != nil {
		return nil, err
	}

	live := make([]int64, 0, len(states))
	for _, id := range ids {
		if _, ok := states[id]; ok {
			live = append(live, id)
		}
	}

	variants, err := cachedBatch(ctx, r, PrefixVariant, live, r.next.Variants)
	if err != nil {
		return nil, err
	}

	for id, v := range variants {
		state, ok := states[id]
		if !ok {
			delete(variants, id)
			continue
		}
		state.Apply(v)
	}
	return variants, nil
}

func (r *CachedDimensionResolver) Sizes(ctx context.Context, ids []int64) (map[int64]*domain.SizeInfo, error) {
	return cachedBatch(ctx, r, PrefixSize, ids, r.next.Sizes)
}

func (r *CachedDimensionResolver) Colors(ctx context.Context, ids []int64) (map[int64]*domain.ColorInfo, error) {
	return cachedBatch(ctx, r, PrefixColor, ids, r.next.Colors)
}

// cachedBatch serves hits from the cache and loads the misses in one call.
// Cache read failures degrade to a full load.
func cachedBatch[T any](ctx context.Context, r *CachedDimensionResolver, prefix CacheKeyPrefix, ids []int64,
	load func(context.Context, []int64) (map[int64]*T, error)) (map[int64]*T, error) {

	result := make(map[int64]*T, len(ids))
	var misses []int64

	for _, id := range ids {
		var v T
		err := r.cache.Get(ctx, BuildKey(prefix, strconv.FormatInt(id, 10)), &v)
		switch {
		case err == nil:
			result[id] = &v
		case errors.Is(err, ErrCacheMiss):
			misses = append(misses, id)
		default:
			r.logger.WarnContext(ctx, "dimension cache read failed",
				slog.String("prefix", string(prefix)),
				slog.String("error", err.Error()))
			misses = append(misses, id)
		}
	}

	if len(misses) == 0 {
		return result, nil
	}

	loaded, err := load(ctx, misses)
	if err != nil {
		return nil, err
	}

	for id, v := range loaded {
		result[id] = v
		if err := r.cache.SetWithTTL(ctx, BuildKey(prefix, strconv.FormatInt(id, 10)), v, r.ttl); err != nil {
			r.logger.WarnContext(ctx, "dimension cache write failed",
				slog.String("prefix", string(prefix)),
				slog.String("error", err.Error()))
		}
	}

	r.logger.DebugContext(ctx, "dimension lookup",
		slog.String("prefix", string(prefix)),
		slog.Int("hits", len(ids)-len(misses)),
		slog.Int("misses", len(misses)))
	return result, nil
}
