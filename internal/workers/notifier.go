// internal/workers/notifier.go
package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
)

// Enqueuer is the part of asynq.Client used to schedule tasks
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier schedules a low stock scan for a key after writes that reduce it
type AsynqNotifier struct {
	client Enqueuer
	delay  time.Duration
	logger *slog.Logger
}

var _ ports.LowStockNotifier = (*AsynqNotifier)(nil)

// NewAsynqNotifier creates a notifier. Scans run after delay so bursts of writes
// to one key produce a single scan.
func NewAsynqNotifier(client Enqueuer, delay time.Duration, logger *slog.Logger) *AsynqNotifier {
	return &AsynqNotifier{
		client: client,
		delay:  delay,
		logger: logger.With(slog.String("component", "low_stock_notifier")),
	}
}

// NotifyPossibleLowStock enqueues a scan unless one is already pending for the key
func (n *AsynqNotifier) NotifyPossibleLowStock(ctx context.Context, tenantID int64, key domain.StockKey) error {
	task, err := NewLowStockScanTask(tenantID, key)
	if err != nil {
		return err
	}

	info, err := n.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueDefault),
		asynq.TaskID(scanTaskID(tenantID, key)),
		asynq.ProcessIn(n.delay),
		asynq.MaxRetry(3),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
		n.logger.DebugContext(ctx, "low stock scan already pending", slog.String("key", key.String()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue low stock scan: %w", err)
	}

	n.logger.DebugContext(ctx, "low stock scan enqueued",
		slog.String("task_id", info.ID),
		slog.String("key", key.String()),
		slog.Duration("delay", n.delay))
	return nil
}
