// internal/core/services/types.go
package services

import "time"

const (
	// DefaultMaxPageSize caps list page sizes when no option overrides it
	DefaultMaxPageSize = 100
	// DefaultLowStockLimit is used when LowStock is called with a non-positive limit
	DefaultLowStockLimit = 10
)

// InventoryOption configures an InventoryService
type InventoryOption func(*InventoryService)

// WithMaxPageSize sets the largest accepted page size.
func WithMaxPageSize(n int) InventoryOption {
	return func(s *InventoryService) {
		if n > 0 {
			s.maxPageSize = n
		}
	}
}

// WithClock replaces time.Now, used for synthetic last-updated values and day boundaries.
func WithClock(now func() time.Time) InventoryOption {
	return func(s *InventoryService) {
		if now != nil {
			s.now = now
		}
	}
}

// MovementOption configures a MovementService
type MovementOption func(*MovementService)

// WithMovementClock replaces time.Now for event timestamps and activity windows.
func WithMovementClock(now func() time.Time) MovementOption {
	return func(s *MovementService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithHistoryPageSize sets the largest accepted history page size.
func WithHistoryPageSize(n int) MovementOption {
	return func(s *MovementService) {
		if n > 0 {
			s.maxPageSize = n
		}
	}
}

// startOfDay returns local midnight of t.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
