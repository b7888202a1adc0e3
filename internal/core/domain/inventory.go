// internal/core/domain/inventory.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultImageContentType is used when an image is stored without a content type
const DefaultImageContentType = "image/jpeg"

// PartialSums maps each key to the summed quantity of one log.
// Adjustment sums are already signed.
type PartialSums map[StockKey]int64

// AggregatedStock is the derived quantity for one key
type AggregatedStock struct {
	Key             StockKey `json:"key"`
	TotalIn         int64    `json:"total_in"`
	TotalOut        int64    `json:"total_out"`
	NetAdjustment   int64    `json:"net_adjustment"`
	CurrentQuantity int64    `json:"current_quantity"`
}

// Recompute sets CurrentQuantity from the partial sums.
func (a *AggregatedStock) Recompute() {
	a.CurrentQuantity = a.TotalIn - a.TotalOut + a.NetAdjustment
}

// ThresholdRecord holds the mutable reorder settings of a key
type ThresholdRecord struct {
	ID            int64     `json:"id"`
	Key           StockKey  `json:"key"`
	ReorderLevel  int       `json:"reorder_level"`
	CurrentStock  int       `json:"-"`
	LastUpdatedBy int64     `json:"last_updated_by"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// Image is opaque product image content
type Image struct {
	Data        []byte `json:"data"`
	ContentType string `json:"content_type"`
}

// VariantInfo is the display and ownership data of a variant
type VariantInfo struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	ProductID    int64            `json:"product_id"`
	ProductName  string           `json:"product_name"`
	CategoryID   *int64           `json:"category_id,omitempty"`
	CategoryName string           `json:"category_name,omitempty"`
	Price        decimal.Decimal  `json:"price"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	Image        *Image           `json:"image,omitempty"`
	OwnerID      int64            `json:"owner_id"`
	ArchivedAt   *time.Time       `json:"archived_at,omitempty"`
}

// IsArchived reports whether the variant has been soft-archived.
func (v *VariantInfo) IsArchived() bool {
	return v.ArchivedAt != nil
}

// OwnedBy reports whether the variant is live and belongs to the tenant.
func (v *VariantInfo) OwnedBy(tenantID int64) bool {
	return v != nil && !v.IsArchived() && v.OwnerID == tenantID
}

// VariantState is the part of a variant that decides ownership. It is always
// read live, never from the display cache.
type VariantState struct {
	OwnerID    int64
	ArchivedAt *time.Time
}

// Apply overwrites the ownership fields of v with the live state.
func (st VariantState) Apply(v *VariantInfo) {
	v.OwnerID = st.OwnerID
	v.ArchivedAt = st.ArchivedAt
}

// SizeInfo is the display data of a size
type SizeInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ColorInfo is the display data of a color
type ColorInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex,omitempty"`
}

// InventoryRow is one assembled line of the inventory view
type InventoryRow struct {
	AggregatedStock

	ReorderLevel  int       `json:"reorder_level"`
	LastUpdated   time.Time `json:"last_updated"`
	LastUpdatedBy *int64    `json:"last_updated_by,omitempty"`

	VariantName  string           `json:"variant_name"`
	ProductID    int64            `json:"product_id"`
	ProductName  string           `json:"product_name"`
	CategoryID   *int64           `json:"category_id,omitempty"`
	CategoryName string           `json:"category_name,omitempty"`
	SizeName     *string          `json:"size_name,omitempty"`
	ColorName    *string          `json:"color_name,omitempty"`
	ColorHex     *string          `json:"color_hex,omitempty"`
	Price        decimal.Decimal  `json:"price"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	Image        *Image           `json:"image,omitempty"`
}

// NewInventoryRow assembles a row. threshold, size and color may be nil.
// Without a threshold the reorder level is 0 and last-updated is now.
func NewInventoryRow(stock AggregatedStock, variant *VariantInfo, size *SizeInfo, color *ColorInfo,
	threshold *ThresholdRecord, now time.Time) *InventoryRow {
	row := &InventoryRow{
		AggregatedStock: stock,
		LastUpdated:     now,
		VariantName:     variant.Name,
		ProductID:       variant.ProductID,
		ProductName:     variant.ProductName,
		CategoryID:      variant.CategoryID,
		CategoryName:    variant.CategoryName,
		Price:           variant.Price,
		CostPrice:       variant.CostPrice,
	}

	if variant.Image != nil && len(variant.Image.Data) > 0 {
		img := *variant.Image
		if img.ContentType == "" {
			img.ContentType = DefaultImageContentType
		}
		row.Image = &img
	}

	if threshold != nil {
		row.ReorderLevel = threshold.ReorderLevel
		row.LastUpdated = threshold.LastUpdatedAt
		by := threshold.LastUpdatedBy
		row.LastUpdatedBy = &by
	}

	if size != nil {
		name := size.Name
		row.SizeName = &name
	}
	if color != nil {
		name := color.Name
		row.ColorName = &name
		if color.Hex != "" {
			hex := color.Hex
			row.ColorHex = &hex
		}
	}

	return row
}

// MatchesSearch reports whether term is a case-insensitive substring of the
// variant, product, size or color name. An empty term matches every row.
func (r *InventoryRow) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, name := range []string{r.VariantName, r.ProductName, deref(r.SizeName), deref(r.ColorName)} {
		if name != "" && strings.Contains(strings.ToLower(name), term) {
			return true
		}
	}
	return false
}

// IsLowStock reports whether a positive reorder level has been reached.
func (r *InventoryRow) IsLowStock() bool {
	return r.ReorderLevel > 0 && r.CurrentQuantity <= int64(r.ReorderLevel)
}

// SortNames returns the names used to order rows, lowercased.
func (r *InventoryRow) SortNames() [4]string {
	return [4]string{
		strings.ToLower(r.ProductName),
		strings.ToLower(r.VariantName),
		strings.ToLower(deref(r.SizeName)),
		strings.ToLower(deref(r.ColorName)),
	}
}

// MovementStats summarizes one log for the dashboard
type MovementStats struct {
	TotalEvents   int64 `json:"total_events"`
	TotalQuantity int64 `json:"total_quantity"`
	TodayEvents   int64 `json:"today_events"`
	TodayQuantity int64 `json:"today_quantity"`
}

// DashboardStats summarizes a tenant's inventory
type DashboardStats struct {
	StockIn        MovementStats `json:"stock_in"`
	StockOut       MovementStats `json:"stock_out"`
	Adjustments    MovementStats `json:"adjustments"`
	LowStockCount  int           `json:"low_stock_count"`
	ActiveVariants int64         `json:"active_variants"`
	TrackedKeys    int           `json:"tracked_keys"`
	OrphanedKeys   int           `json:"orphaned_keys"`
	GeneratedAt    time.Time     `json:"generated_at"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
