// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/ammerola/stockledger/internal/core/domain"
)

const (
	TypeLowStockScan = "inventory:low_stock_scan"

	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// LowStockScanPayload identifies the key to re-check after a write that lowered it
type LowStockScanPayload struct {
	TenantID int64           `json:"tenant_id"`
	Key      domain.StockKey `json:"key"`
}

// NewLowStockScanTask builds a scan task for one key
func NewLowStockScanTask(tenantID int64, key domain.StockKey) (*asynq.Task, error) {
	payload, err := json.Marshal(LowStockScanPayload{TenantID: tenantID, Key: key})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal low stock payload: %w", err)
	}
	return asynq.NewTask(TypeLowStockScan, payload), nil
}

// scanTaskID makes concurrent scans of the same key collapse into one queued task
func scanTaskID(tenantID int64, key domain.StockKey) string {
	return fmt.Sprintf("%s:%d:%s", TypeLowStockScan, tenantID, key)
}
