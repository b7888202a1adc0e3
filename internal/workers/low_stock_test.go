package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/stockledger/internal/adapters/redis_adapter"
	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/workers"
	"github.com/ammerola/stockledger/test/helpers"
	"github.com/ammerola/stockledger/test/mocks"
)

const tenant = int64(10)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	f.opts = append(f.opts, opts)
	return &asynq.TaskInfo{ID: "task-1", Queue: workers.QueueDefault}, nil
}

func TestAsynqNotifier_NotifyPossibleLowStock(t *testing.T) {
	key := helpers.Key(3, 0, 4)

	tests := []struct {
		name          string
		enqueueErr    error
		expectedTasks int
		expectedError bool
	}{
		{name: "enqueues_scan", expectedTasks: 1},
		{name: "pending_scan_is_not_an_error", enqueueErr: asynq.ErrTaskIDConflict},
		{name: "duplicate_scan_is_not_an_error", enqueueErr: asynq.ErrDuplicateTask},
		{name: "broker_failure_is_returned", enqueueErr: errors.New("dial tcp: refused"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeEnqueuer{err: tt.enqueueErr}
			notifier := workers.NewAsynqNotifier(client, 30*time.Second, helpers.TestLogger())

			err := notifier.NotifyPossibleLowStock(context.Background(), tenant, key)
			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, client.tasks, tt.expectedTasks)

			if tt.expectedTasks == 0 {
				return
			}
			task := client.tasks[0]
			assert.Equal(t, workers.TypeLowStockScan, task.Type())

			var payload workers.LowStockScanPayload
			require.NoError(t, json.Unmarshal(task.Payload(), &payload))
			assert.Equal(t, tenant, payload.TenantID)
			assert.Equal(t, key, payload.Key)

			var optionTypes []asynq.OptionType
			for _, opt := range client.opts[0] {
				optionTypes = append(optionTypes, opt.Type())
			}
			assert.Contains(t, optionTypes, asynq.TaskIDOpt)
			assert.Contains(t, optionTypes, asynq.ProcessInOpt)
		})
	}
}

type processorFixture struct {
	inventory *mocks.MockInventoryService
	cache     *redis_a.Cache
	processor *workers.LowStockProcessor
}

func newProcessorFixture(t *testing.T) *processorFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	testRedis := helpers.SetupTestRedis(t)
	f := &processorFixture{
		inventory: mocks.NewMockInventoryService(ctrl),
		cache:     redis_a.NewCache(testRedis.Client, time.Hour, helpers.TestLogger()),
	}
	f.processor = workers.NewLowStockProcessor(f.inventory, f.cache, time.Hour, helpers.TestLogger())
	return f
}

func scanTask(t *testing.T, key domain.StockKey) *asynq.Task {
	t.Helper()
	task, err := workers.NewLowStockScanTask(tenant, key)
	require.NoError(t, err)
	return task
}

func rowWith(key domain.StockKey, qty int64, reorderLevel int) *domain.InventoryRow {
	row := domain.NewInventoryRow(
		domain.AggregatedStock{Key: key, TotalIn: qty, CurrentQuantity: qty},
		helpers.CreateTestVariant(key.VariantID, tenant), nil, nil, nil, time.Now(),
	)
	row.ReorderLevel = reorderLevel
	return row
}

func alertKey(key domain.StockKey) string {
	return redis_a.BuildKey(workers.PrefixLowStockAlert, "10", key.String())
}

func TestLowStockProcessor_RaisesAlertOnce(t *testing.T) {
	ctx := context.Background()
	f := newProcessorFixture(t)
	key := helpers.Key(3, 2, 0)

	f.inventory.EXPECT().GetDetails(gomock.Any(), tenant, key).Return(rowWith(key, 2, 5), nil).Times(2)

	require.NoError(t, f.processor.ProcessScan(ctx, scanTask(t, key)))

	var alert workers.LowStockAlert
	require.NoError(t, f.cache.Get(ctx, alertKey(key), &alert))
	assert.Equal(t, int64(2), alert.Quantity)
	assert.Equal(t, 5, alert.ReorderLevel)
	assert.Equal(t, key, alert.Key)
	first := alert.RaisedAt

	require.NoError(t, f.processor.ProcessScan(ctx, scanTask(t, key)))
	require.NoError(t, f.cache.Get(ctx, alertKey(key), &alert))
	assert.Equal(t, first, alert.RaisedAt, "second scan keeps the original alert")
}

func TestLowStockProcessor_RecoveryClearsAlert(t *testing.T) {
	ctx := context.Background()
	f := newProcessorFixture(t)
	key := helpers.Key(3, 0, 0)

	require.NoError(t, f.cache.SetWithTTL(ctx, alertKey(key), workers.LowStockAlert{Key: key}, time.Hour))
	f.inventory.EXPECT().GetDetails(gomock.Any(), tenant, key).Return(rowWith(key, 9, 5), nil)

	require.NoError(t, f.processor.ProcessScan(ctx, scanTask(t, key)))

	var alert workers.LowStockAlert
	assert.ErrorIs(t, f.cache.Get(ctx, alertKey(key), &alert), redis_a.ErrCacheMiss)
}

func TestLowStockProcessor_Errors(t *testing.T) {
	key := helpers.Key(4, 0, 0)

	tests := []struct {
		name          string
		serviceErr    error
		expectedError error
	}{
		{name: "archived_variant_is_skipped", serviceErr: domain.ErrNotOwned},
		{name: "missing_key_is_skipped", serviceErr: domain.ErrNotFound},
		{name: "transient_failure_is_retried", serviceErr: domain.ErrTransientStore, expectedError: domain.ErrTransientStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProcessorFixture(t)
			f.inventory.EXPECT().GetDetails(gomock.Any(), tenant, key).Return(nil, tt.serviceErr)

			err := f.processor.ProcessScan(context.Background(), scanTask(t, key))
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLowStockProcessor_MalformedPayloadSkipsRetry(t *testing.T) {
	f := newProcessorFixture(t)

	err := f.processor.ProcessScan(context.Background(), asynq.NewTask(workers.TypeLowStockScan, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
