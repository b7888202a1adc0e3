// internal/core/domain/movement.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction of a stock adjustment
type Direction string

const (
	DirectionIncrease Direction = "Increase"
	DirectionDecrease Direction = "Decrease"
)

// ParseDirection accepts the two directions case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "increase":
		return DirectionIncrease, nil
	case "decrease":
		return DirectionDecrease, nil
	}
	return "", fmt.Errorf("%w: adjustment type must be Increase or Decrease, got %q", ErrInvalidArgument, s)
}

// Sign is +1 for increases and -1 for decreases.
func (d Direction) Sign() int64 {
	if d == DirectionDecrease {
		return -1
	}
	return 1
}

// Movement holds the fields common to all three logs.
type Movement struct {
	ID          int64      `json:"id"`
	Key         StockKey   `json:"key"`
	Quantity    int        `json:"quantity"`
	Timestamp   time.Time  `json:"timestamp"`
	ActorUserID int64      `json:"actor_user_id"`
	OwnerUserID int64      `json:"owner_user_id"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`

	// set when read back from a log
	VariantName string `json:"variant_name,omitempty"`
	ProductName string `json:"product_name,omitempty"`
}

// Validate checks the key and quantity.
func (m *Movement) Validate() error {
	if err := m.Key.Validate(); err != nil {
		return err
	}
	if m.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}
	if m.OwnerUserID <= 0 {
		return fmt.Errorf("%w: owner is required", ErrInvalidArgument)
	}
	return nil
}

// PrepareForStorage stamps the event time when unset.
func (m *Movement) PrepareForStorage(now time.Time) {
	if m.Timestamp.IsZero() {
		m.Timestamp = now
	}
}

// InflowEvent records received stock.
type InflowEvent struct {
	Movement
	UnitCost   decimal.Decimal `json:"unit_cost"`
	SupplierID *int64          `json:"supplier_id,omitempty"`
}

// Validate checks the common fields and the unit cost.
func (e *InflowEvent) Validate() error {
	if err := e.Movement.Validate(); err != nil {
		return err
	}
	if e.UnitCost.IsNegative() {
		return fmt.Errorf("%w: unit_cost cannot be negative", ErrInvalidArgument)
	}
	return nil
}

// OutflowEvent records removed stock.
type OutflowEvent struct {
	Movement
	Reason *string `json:"reason,omitempty"`
}

// AdjustmentEvent records a signed correction.
type AdjustmentEvent struct {
	Movement
	Direction Direction `json:"direction"`
	Reason    *string   `json:"reason,omitempty"`
}

// Validate checks the common fields and the direction.
func (e *AdjustmentEvent) Validate() error {
	if e.Direction != DirectionIncrease && e.Direction != DirectionDecrease {
		return fmt.Errorf("%w: adjustment type must be Increase or Decrease", ErrInvalidArgument)
	}
	return e.Movement.Validate()
}

// SignedQuantity applies the direction to the quantity.
func (e *AdjustmentEvent) SignedQuantity() int64 {
	return e.Direction.Sign() * int64(e.Quantity)
}
