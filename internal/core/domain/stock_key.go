// internal/core/domain/stock_key.go
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// DimensionID is an optional size or color reference.
// The zero value is Untracked, which never equals Tracked(0).
type DimensionID struct {
	id    int64
	valid bool
}

// Untracked returns the absent dimension.
func Untracked() DimensionID {
	return DimensionID{}
}

// Tracked returns a present dimension with the given id.
func Tracked(id int64) DimensionID {
	return DimensionID{id: id, valid: true}
}

// DimensionFromPtr maps nil to Untracked.
func DimensionFromPtr(p *int64) DimensionID {
	if p == nil {
		return Untracked()
	}
	return Tracked(*p)
}

// IsTracked reports whether the dimension is present.
func (d DimensionID) IsTracked() bool {
	return d.valid
}

// ID returns the id and whether it is present.
func (d DimensionID) ID() (int64, bool) {
	return d.id, d.valid
}

// Ptr returns nil for Untracked, suitable as a nullable SQL argument.
func (d DimensionID) Ptr() *int64 {
	if !d.valid {
		return nil
	}
	id := d.id
	return &id
}

// SQLValue returns nil or the id as an interface, for query builders.
func (d DimensionID) SQLValue() interface{} {
	if !d.valid {
		return nil
	}
	return d.id
}

func (d DimensionID) String() string {
	if !d.valid {
		return "none"
	}
	return strconv.FormatInt(d.id, 10)
}

// Compare orders Untracked before any tracked id.
func (d DimensionID) Compare(o DimensionID) int {
	switch {
	case d.valid == o.valid && d.id == o.id:
		return 0
	case !d.valid:
		return -1
	case !o.valid:
		return 1
	case d.id < o.id:
		return -1
	default:
		return 1
	}
}

// MarshalJSON encodes Untracked as null.
func (d DimensionID) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(d.id, 10)), nil
}

// UnmarshalJSON accepts null or an integer.
func (d *DimensionID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = Untracked()
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("dimension id must be an integer or null: %w", err)
	}
	*d = Tracked(id)
	return nil
}

// StockKey identifies one stock position. It is comparable and usable as a map key;
// two keys are equal only when every component matches, absence included.
type StockKey struct {
	VariantID int64       `json:"variant_id"`
	SizeID    DimensionID `json:"size_id"`
	ColorID   DimensionID `json:"color_id"`
}

// NewStockKey builds a key from nullable size and color ids.
func NewStockKey(variantID int64, sizeID, colorID *int64) StockKey {
	return StockKey{
		VariantID: variantID,
		SizeID:    DimensionFromPtr(sizeID),
		ColorID:   DimensionFromPtr(colorID),
	}
}

// Validate checks the variant reference.
func (k StockKey) Validate() error {
	if k.VariantID <= 0 {
		return fmt.Errorf("%w: variant_id must be positive", ErrInvalidArgument)
	}
	return nil
}

// Compare orders by variant, then size, then color.
func (k StockKey) Compare(o StockKey) int {
	switch {
	case k.VariantID < o.VariantID:
		return -1
	case k.VariantID > o.VariantID:
		return 1
	}
	if c := k.SizeID.Compare(o.SizeID); c != 0 {
		return c
	}
	return k.ColorID.Compare(o.ColorID)
}

func (k StockKey) String() string {
	return fmt.Sprintf("%d/%s/%s", k.VariantID, k.SizeID, k.ColorID)
}
