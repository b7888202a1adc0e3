// internal/adapters/db/catalog_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/stockledger/internal/core/ports"
)

// NewProduct holds the fields needed to create a product
type NewProduct struct {
	Name             string
	CategoryID       *int64
	Image            []byte
	ImageContentType string
	OwnerID          int64
}

// NewVariant holds the fields needed to create a variant
type NewVariant struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	CostPrice *decimal.Decimal
	OwnerID   int64
}

// CatalogRepository writes catalog rows. It backs the seeder and tests; catalog
// management itself lives outside this service.
type CatalogRepository struct {
	db     ports.Database
	logger *slog.Logger
}

// NewCatalogRepository creates a new catalog writer
func NewCatalogRepository(db ports.Database, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "catalog")),
	}
}

// CreateCategory inserts a category and returns its id
func (r *CatalogRepository) CreateCategory(ctx context.Context, name string, ownerID int64) (int64, error) {
	return r.insertReturningID(ctx, "categories", []string{"name", "user_id"}, name, ownerID)
}

// CreateProduct inserts a product and returns its id
func (r *CatalogRepository) CreateProduct(ctx context.Context, p NewProduct) (int64, error) {
	var contentType *string
	if p.ImageContentType != "" {
		contentType = &p.ImageContentType
	}
	return r.insertReturningID(ctx, "products",
		[]string{"name", "category_id", "image", "image_content_type", "user_id"},
		p.Name, p.CategoryID, p.Image, contentType, p.OwnerID)
}

// CreateVariant inserts a variant and returns its id
func (r *CatalogRepository) CreateVariant(ctx context.Context, v NewVariant) (int64, error) {
	return r.insertReturningID(ctx, "variants",
		[]string{"product_id", "name", "price", "cost_price", "user_id"},
		v.ProductID, v.Name, v.Price, v.CostPrice, v.OwnerID)
}

// CreateSize inserts a size and returns its id
func (r *CatalogRepository) CreateSize(ctx context.Context, name string) (int64, error) {
	return r.insertReturningID(ctx, "sizes", []string{"name"}, name)
}

// CreateColor inserts a color and returns its id
func (r *CatalogRepository) CreateColor(ctx context.Context, name, hex string) (int64, error) {
	return r.insertReturningID(ctx, "colors", []string{"name", "hex_value"}, name, hex)
}

// ArchiveVariant soft-archives a variant
func (r *CatalogRepository) ArchiveVariant(ctx context.Context, id int64) error {
	query, args, err := psql.
		Update("variants").
		Set("archived_at", time.Now()).
		Where("id = ? AND archived_at IS NULL", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build archive query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to archive variant %d: %w", id, err)
	}
	return nil
}

func (r *CatalogRepository) insertReturningID(ctx context.Context, table string, columns []string, values ...interface{}) (int64, error) {
	query, args, err := psql.
		Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build %s insert: %w", table, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	r.logger.DebugContext(ctx, "catalog row created", slog.String("table", table), slog.Int64("id", id))
	return id, nil
}
