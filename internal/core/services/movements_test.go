package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/services"
	"github.com/ammerola/stockledger/test/helpers"
	"github.com/ammerola/stockledger/test/mocks"
)

type movementFixture struct {
	logs     logMocks
	resolver *mocks.MockDimensionResolver
	notifier *mocks.MockLowStockNotifier
	service  *services.MovementService
}

func newMovementFixture(t *testing.T) *movementFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &movementFixture{
		logs:     newLogMocks(ctrl),
		resolver: mocks.NewMockDimensionResolver(ctrl),
		notifier: mocks.NewMockLowStockNotifier(ctrl),
	}
	f.service = services.NewMovementService(f.logs.in, f.logs.out, f.logs.adj, f.resolver, f.notifier,
		helpers.TestLogger(), services.WithMovementClock(func() time.Time { return fixedNow }))
	return f
}

func (f *movementFixture) expectOwned(variantID int64) {
	f.resolver.EXPECT().ResolveVariant(gomock.Any(), variantID).Return(helpers.CreateTestVariant(variantID, tenant), nil)
}

func TestMovementService_RecordInflow(t *testing.T) {
	key := helpers.Key(1, 2, 0)
	given := time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		event         func() *domain.InflowEvent
		setup         func(*movementFixture)
		expectedTime  time.Time
		expectedError error
	}{
		{
			name: "stamps_owner_and_time",
			event: func() *domain.InflowEvent {
				return &domain.InflowEvent{
					Movement: domain.Movement{Key: key, Quantity: 10, ActorUserID: 3},
					UnitCost: decimal.NewFromFloat(4.5),
				}
			},
			setup: func(f *movementFixture) {
				f.expectOwned(1)
				f.logs.in.EXPECT().Append(gomock.Any(), gomock.Any()).Return(int64(41), nil)
			},
			expectedTime: fixedNow,
		},
		{
			name: "keeps_given_timestamp",
			event: func() *domain.InflowEvent {
				return &domain.InflowEvent{Movement: domain.Movement{Key: key, Quantity: 1, Timestamp: given}}
			},
			setup: func(f *movementFixture) {
				f.expectOwned(1)
				f.logs.in.EXPECT().Append(gomock.Any(), gomock.Any()).Return(int64(41), nil)
			},
			expectedTime: given,
		},
		{
			name: "foreign_variant_is_rejected",
			event: func() *domain.InflowEvent {
				return &domain.InflowEvent{Movement: domain.Movement{Key: key, Quantity: 10}}
			},
			setup: func(f *movementFixture) {
				f.resolver.EXPECT().ResolveVariant(gomock.Any(), int64(1)).Return(helpers.CreateTestVariant(1, tenant+1), nil)
			},
			expectedError: domain.ErrNotOwned,
		},
		{
			name: "zero_quantity_is_rejected",
			event: func() *domain.InflowEvent {
				return &domain.InflowEvent{Movement: domain.Movement{Key: key}}
			},
			setup:         func(f *movementFixture) { f.expectOwned(1) },
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name: "negative_cost_is_rejected",
			event: func() *domain.InflowEvent {
				return &domain.InflowEvent{
					Movement: domain.Movement{Key: key, Quantity: 1},
					UnitCost: decimal.NewFromInt(-1),
				}
			},
			setup:         func(f *movementFixture) { f.expectOwned(1) },
			expectedError: domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMovementFixture(t)
			tt.setup(f)

			event := tt.event()
			id, err := f.service.RecordInflow(context.Background(), tenant, event)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(41), id)
			assert.Equal(t, int64(41), event.ID)
			assert.Equal(t, tenant, event.OwnerUserID)
			assert.Equal(t, tt.expectedTime, event.Timestamp)
		})
	}
}

func TestMovementService_RecordOutflow_NotifiesLowStock(t *testing.T) {
	f := newMovementFixture(t)
	key := helpers.Key(2, 0, 0)

	f.expectOwned(2)
	f.logs.out.EXPECT().Append(gomock.Any(), gomock.Any()).Return(int64(5), nil)
	f.notifier.EXPECT().NotifyPossibleLowStock(gomock.Any(), tenant, key).Return(errors.New("queue down"))

	id, err := f.service.RecordOutflow(context.Background(), tenant, &domain.OutflowEvent{
		Movement: domain.Movement{Key: key, Quantity: 3},
	})

	require.NoError(t, err, "notification failures do not fail the write")
	assert.Equal(t, int64(5), id)
}

func TestMovementService_RecordOutflow_AppendFailure(t *testing.T) {
	f := newMovementFixture(t)
	key := helpers.Key(2, 0, 0)

	f.expectOwned(2)
	f.logs.out.EXPECT().Append(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrTransientStore)

	_, err := f.service.RecordOutflow(context.Background(), tenant, &domain.OutflowEvent{
		Movement: domain.Movement{Key: key, Quantity: 3},
	})
	assert.ErrorIs(t, err, domain.ErrTransientStore)
}

func TestMovementService_RecordAdjustment(t *testing.T) {
	key := helpers.Key(3, 0, 4)

	tests := []struct {
		name          string
		direction     domain.Direction
		quantity      int
		setup         func(*movementFixture)
		expectedError error
	}{
		{
			name:      "increase_does_not_notify",
			direction: domain.DirectionIncrease,
			quantity:  2,
			setup: func(f *movementFixture) {
				f.expectOwned(3)
				f.logs.adj.EXPECT().Append(gomock.Any(), gomock.Any()).Return(int64(9), nil)
			},
		},
		{
			name:      "decrease_notifies",
			direction: domain.DirectionDecrease,
			quantity:  2,
			setup: func(f *movementFixture) {
				f.expectOwned(3)
				f.logs.adj.EXPECT().Append(gomock.Any(), gomock.Any()).Return(int64(9), nil)
				f.notifier.EXPECT().NotifyPossibleLowStock(gomock.Any(), tenant, key).Return(nil)
			},
		},
		{
			name:          "unknown_direction_appends_nothing",
			direction:     domain.Direction("Sideways"),
			quantity:      2,
			setup:         func(f *movementFixture) { f.expectOwned(3) },
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "non_positive_quantity_appends_nothing",
			direction:     domain.DirectionIncrease,
			quantity:      0,
			setup:         func(f *movementFixture) { f.expectOwned(3) },
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:      "missing_variant_is_not_owned",
			direction: domain.DirectionIncrease,
			quantity:  2,
			setup: func(f *movementFixture) {
				f.resolver.EXPECT().ResolveVariant(gomock.Any(), int64(3)).Return(nil, nil)
			},
			expectedError: domain.ErrNotOwned,
		},
		{
			name:      "resolver_failure_propagates",
			direction: domain.DirectionIncrease,
			quantity:  2,
			setup: func(f *movementFixture) {
				f.resolver.EXPECT().ResolveVariant(gomock.Any(), int64(3)).Return(nil, domain.ErrTransientStore)
			},
			expectedError: domain.ErrTransientStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMovementFixture(t)
			tt.setup(f)

			id, err := f.service.RecordAdjustment(context.Background(), tenant, &domain.AdjustmentEvent{
				Movement:  domain.Movement{Key: key, Quantity: tt.quantity, ActorUserID: 4},
				Direction: tt.direction,
			})
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(9), id)
		})
	}
}
