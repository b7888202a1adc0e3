package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/stockledger/internal/adapters/redis_adapter"
	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/test/helpers"
	"github.com/ammerola/stockledger/test/mocks"
)

func newTestCache(t *testing.T) (*redis_a.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger()), mr
}

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	tests := []struct {
		name  string
		key   string
		value interface{}
		dest  func() interface{}
	}{
		{
			name:  "stores_and_retrieves_string",
			key:   "test:string",
			value: "test value",
			dest:  func() interface{} { return new(string) },
		},
		{
			name:  "stores_and_retrieves_size",
			key:   "test:size",
			value: domain.SizeInfo{ID: 3, Name: "M"},
			dest:  func() interface{} { return new(domain.SizeInfo) },
		},
		{
			name: "stores_and_retrieves_variant_with_decimal",
			key:  "test:variant",
			value: domain.VariantInfo{
				ID:          1,
				Name:        "Slim Fit",
				ProductName: "Shirt",
				Price:       decimal.RequireFromString("19.99"),
				Image:       &domain.Image{Data: []byte{0xff, 0xd8}, ContentType: "image/jpeg"},
				OwnerID:     10,
			},
			dest: func() interface{} { return new(domain.VariantInfo) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, cache.Set(ctx, tt.key, tt.value))

			dest := tt.dest()
			require.NoError(t, cache.Get(ctx, tt.key, dest))

			switch got := dest.(type) {
			case *string:
				assert.Equal(t, tt.value, *got)
			case *domain.SizeInfo:
				assert.Equal(t, tt.value, *got)
			case *domain.VariantInfo:
				want := tt.value.(domain.VariantInfo)
				assert.Equal(t, want.Name, got.Name)
				assert.True(t, want.Price.Equal(got.Price))
				assert.Equal(t, want.Image, got.Image)
				assert.Equal(t, want.OwnerID, got.OwnerID)
			}
		})
	}
}

func TestCache_GetMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	var result string
	err := cache.Get(context.Background(), "missing", &result)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_SetWithTTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	require.NoError(t, cache.SetWithTTL(ctx, "ttl:key", "v", time.Second))
	mr.FastForward(2 * time.Second)

	var result string
	assert.ErrorIs(t, cache.Get(ctx, "ttl:key", &result), redis_a.ErrCacheMiss)
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	keysToDelete := []string{"dim:size:1", "dim:size:2"}
	keysToKeep := []string{"dim:color:1"}
	for _, key := range append(keysToDelete, keysToKeep...) {
		require.NoError(t, cache.Set(ctx, key, "value"))
	}

	require.NoError(t, cache.DeletePattern(ctx, "dim:size:*"))

	for _, key := range keysToDelete {
		var result string
		assert.ErrorIs(t, cache.Get(ctx, key, &result), redis_a.ErrCacheMiss)
	}
	for _, key := range keysToKeep {
		var result string
		require.NoError(t, cache.Get(ctx, key, &result))
	}
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	fetchCount := 0
	fetch := func() (interface{}, error) {
		fetchCount++
		return "fetched value", nil
	}

	var first string
	require.NoError(t, cache.GetOrSet(ctx, "getorset:test", &first, fetch, time.Minute))
	assert.Equal(t, "fetched value", first)

	var second string
	require.NoError(t, cache.GetOrSet(ctx, "getorset:test", &second, fetch, time.Minute))
	assert.Equal(t, "fetched value", second)
	assert.Equal(t, 1, fetchCount)

	var failed string
	err := cache.GetOrSet(ctx, "getorset:err", &failed, func() (interface{}, error) {
		return nil, errors.New("db down")
	}, time.Minute)
	assert.ErrorContains(t, err, "fetch error")
}

func TestCache_Ping(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, cache.Ping(context.Background()))

	mr.SetError("LOADING")
	assert.Error(t, cache.Ping(context.Background()))
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "dim:variant:42", redis_a.BuildKey(redis_a.PrefixVariant, "42"))
	assert.Equal(t, "inventory:orphans", redis_a.BuildKey(redis_a.PrefixOrphans))
}

func TestOrphanCounter(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)
	counter := redis_a.NewOrphanCounter(cache, time.Hour, helpers.TestLogger())

	count, err := counter.Count(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, counter.RecordOrphans(ctx, 7, 2))
	require.NoError(t, counter.RecordOrphans(ctx, 7, 3))
	require.NoError(t, counter.RecordOrphans(ctx, 7, 0))
	require.NoError(t, counter.RecordOrphans(ctx, 8, 1))

	count, err = counter.Count(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.Equal(t, time.Hour, mr.TTL("inventory:orphans:7"))

	mr.FastForward(2 * time.Hour)
	count, err = counter.Count(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCachedDimensionResolver_Sizes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache, _ := newTestCache(t)
	next := mocks.NewMockDimensionResolver(ctrl)
	resolver := redis_a.NewCachedDimensionResolver(next, cache, time.Minute, helpers.TestLogger())

	next.EXPECT().
		Sizes(gomock.Any(), []int64{1, 2}).
		Return(map[int64]*domain.SizeInfo{1: {ID: 1, Name: "S"}}, nil).
		Times(1)
	next.EXPECT().
		Sizes(gomock.Any(), []int64{2, 3}).
		Return(map[int64]*domain.SizeInfo{3: {ID: 3, Name: "L"}}, nil).
		Times(1)

	first, err := resolver.Sizes(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, map[int64]*domain.SizeInfo{1: {ID: 1, Name: "S"}}, first)

	// 1 is cached; 2 was missing and is asked again.
	second, err := resolver.Sizes(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, second, 2)
	assert.Equal(t, "S", second[1].Name)
	assert.Equal(t, "L", second[3].Name)

	single, err := resolver.ResolveSize(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "L", single.Name)
}

func TestCachedDimensionResolver_VariantPassThrough(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache, _ := newTestCache(t)
	next := mocks.NewMockDimensionResolver(ctrl)
	resolver := redis_a.NewCachedDimensionResolver(next, cache, time.Minute, helpers.TestLogger())

	variant := &domain.VariantInfo{ID: 5, OwnerID: 1}
	next.EXPECT().ResolveVariant(gomock.Any(), int64(5)).Return(variant, nil).Times(2)
	next.EXPECT().CountActiveVariants(gomock.Any(), int64(1)).Return(int64(4), nil)

	for i := 0; i < 2; i++ {
		got, err := resolver.ResolveVariant(ctx, 5)
		require.NoError(t, err)
		assert.Same(t, variant, got)
	}

	n, err := resolver.CountActiveVariants(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestCachedDimensionResolver_LoadErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache, _ := newTestCache(t)
	next := mocks.NewMockDimensionResolver(ctrl)
	resolver := redis_a.NewCachedDimensionResolver(next, cache, time.Minute, helpers.TestLogger())

	next.EXPECT().Colors(gomock.Any(), []int64{9}).Return(nil, domain.ErrTransientStore)
	_, err := resolver.Colors(ctx, []int64{9})
	assert.ErrorIs(t, err, domain.ErrTransientStore)

	next.EXPECT().Colors(gomock.Any(), []int64{9}).
		Return(map[int64]*domain.ColorInfo{9: {ID: 9, Name: "Red", Hex: "#ff0000"}}, nil).
		Times(1)

	for i := 0; i < 2; i++ {
		colors, err := resolver.Colors(ctx, []int64{9})
		require.NoError(t, err)
		assert.Equal(t, "#ff0000", colors[9].Hex)
	}
}

func TestCachedDimensionResolver_VariantsTakeOwnershipFromLiveState(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache, _ := newTestCache(t)
	next := mocks.NewMockDimensionResolver(ctrl)
	resolver := redis_a.NewCachedDimensionResolver(next, cache, time.Minute, helpers.TestLogger())

	const owner = int64(7)
	archivedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ids := []int64{1, 2}

	gomock.InOrder(
		next.EXPECT().VariantStates(gomock.Any(), ids).Return(map[int64]domain.VariantState{
			1: {OwnerID: owner},
			2: {OwnerID: owner},
		}, nil),
		next.EXPECT().Variants(gomock.Any(), ids).Return(map[int64]*domain.VariantInfo{
			1: {ID: 1, Name: "Slim", ProductName: "Shirt", OwnerID: owner},
			2: {ID: 2, Name: "Wide", ProductName: "Pants", OwnerID: owner},
		}, nil),
		// archived and hard-removed while the names are still cached
		next.EXPECT().VariantStates(gomock.Any(), ids).Return(map[int64]domain.VariantState{
			1: {OwnerID: owner, ArchivedAt: &archivedAt},
		}, nil),
	)

	first, err := resolver.Variants(ctx, ids)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.True(t, first[1].OwnedBy(owner))
	assert.True(t, first[2].OwnedBy(owner))

	second, err := resolver.Variants(ctx, ids)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Slim", second[1].Name)
	assert.True(t, second[1].IsArchived())
	assert.False(t, second[1].OwnedBy(owner))
	assert.NotContains(t, second, int64(2))
}

func TestCachedDimensionResolver_VariantsReassignedOwner(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache, _ := newTestCache(t)
	next := mocks.NewMockDimensionResolver(ctrl)
	resolver := redis_a.NewCachedDimensionResolver(next, cache, time.Minute, helpers.TestLogger())

	gomock.InOrder(
		next.EXPECT().VariantStates(gomock.Any(), []int64{3}).Return(map[int64]domain.VariantState{3: {OwnerID: 1}}, nil),
		next.EXPECT().Variants(gomock.Any(), []int64{3}).Return(map[int64]*domain.VariantInfo{3: {ID: 3, OwnerID: 1}}, nil),
		next.EXPECT().VariantStates(gomock.Any(), []int64{3}).Return(map[int64]domain.VariantState{3: {OwnerID: 2}}, nil),
	)

	_, err := resolver.Variants(ctx, []int64{3})
	require.NoError(t, err)

	got, err := resolver.Variants(ctx, []int64{3})
	require.NoError(t, err)
	assert.False(t, got[3].OwnedBy(1))
	assert.True(t, got[3].OwnedBy(2))
}

func TestCachedDimensionResolver_VariantStateFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache, _ := newTestCache(t)
	next := mocks.NewMockDimensionResolver(ctrl)
	resolver := redis_a.NewCachedDimensionResolver(next, cache, time.Minute, helpers.TestLogger())

	next.EXPECT().VariantStates(gomock.Any(), []int64{1}).Return(nil, domain.ErrTransientStore)

	_, err := resolver.Variants(ctx, []int64{1})
	assert.ErrorIs(t, err, domain.ErrTransientStore)
}
