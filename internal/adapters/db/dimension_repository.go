// internal/adapters/db/dimension_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
)

// DimensionRepository resolves catalog rows for the inventory view
type DimensionRepository struct {
	db     ports.Database
	logger *slog.Logger
}

var _ ports.DimensionResolver = (*DimensionRepository)(nil)

// NewDimensionRepository creates a new catalog resolver backed by PostgreSQL
func NewDimensionRepository(db ports.Database, logger *slog.Logger) *DimensionRepository {
	return &DimensionRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "dimensions")),
	}
}

func variantQuery() squirrel.SelectBuilder {
	return psql.
		Select(
			"v.id", "v.name", "v.product_id", "p.name", "p.category_id", "c.name",
			"v.price", "v.cost_price", "p.image", "p.image_content_type", "v.user_id", "v.archived_at",
		).
		From("variants v").
		Join("products p ON p.id = v.product_id").
		LeftJoin("categories c ON c.id = p.category_id")
}

// ResolveVariant returns the variant or nil when it does not exist
func (r *DimensionRepository) ResolveVariant(ctx context.Context, id int64) (*domain.VariantInfo, error) {
	query, args, err := variantQuery().Where(squirrel.Eq{"v.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build variant query: %w", err)
	}

	v, err := scanVariant(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve variant %d: %w", id, err)
	}
	return v, nil
}

// ResolveSize returns the size or nil when it does not exist
func (r *DimensionRepository) ResolveSize(ctx context.Context, id int64) (*domain.SizeInfo, error) {
	sizes, err := r.Sizes(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	return sizes[id], nil
}

// ResolveColor returns the color or nil when it does not exist
func (r *DimensionRepository) ResolveColor(ctx context.Context, id int64) (*domain.ColorInfo, error) {
	colors, err := r.Colors(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	return colors[id], nil
}

// Variants resolves several variants; missing ids are absent from the map
func (r *DimensionRepository) Variants(ctx context.Context, ids []int64) (map[int64]*domain.VariantInfo, error) {
	result := make(map[int64]*domain.VariantInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := variantQuery().Where(squirrel.Eq{"v.id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build variants query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		result[v.ID] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate variants: %w", classifyError(err))
	}

	return result, nil
}

// VariantStates reads owner and archival of several variants without the catalog joins
func (r *DimensionRepository) VariantStates(ctx context.Context, ids []int64) (map[int64]domain.VariantState, error) {
	result := make(map[int64]domain.VariantState, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := psql.Select("id", "user_id", "archived_at").From("variants").Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build variant state query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read variant states: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    int64
			state domain.VariantState
		)
		if err := rows.Scan(&id, &state.OwnerID, &state.ArchivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan variant state: %w", err)
		}
		result[id] = state
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate variant states: %w", classifyError(err))
	}

	return result, nil
}

// Sizes resolves several sizes
func (r *DimensionRepository) Sizes(ctx context.Context, ids []int64) (map[int64]*domain.SizeInfo, error) {
	result := make(map[int64]*domain.SizeInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := psql.Select("id", "name").From("sizes").Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sizes query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sizes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.SizeInfo
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan size: %w", err)
		}
		result[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sizes: %w", classifyError(err))
	}

	return result, nil
}

// Colors resolves several colors
func (r *DimensionRepository) Colors(ctx context.Context, ids []int64) (map[int64]*domain.ColorInfo, error) {
	result := make(map[int64]*domain.ColorInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := psql.Select("id", "name", "hex_value").From("colors").Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build colors query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve colors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c   domain.ColorInfo
			hex *string
		)
		if err := rows.Scan(&c.ID, &c.Name, &hex); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		if hex != nil {
			c.Hex = *hex
		}
		result[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate colors: %w", classifyError(err))
	}

	return result, nil
}

// CountActiveVariants counts the owner's live variants
func (r *DimensionRepository) CountActiveVariants(ctx context.Context, ownerID int64) (int64, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("variants").
		Where(squirrel.Eq{"user_id": ownerID, "archived_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build variant count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count variants: %w", err)
	}
	return count, nil
}

func scanVariant(row pgx.Row) (*domain.VariantInfo, error) {
	var (
		v            domain.VariantInfo
		categoryName *string
		costPrice    decimal.NullDecimal
		image        []byte
		contentType  *string
		archivedAt   *time.Time
	)

	err := row.Scan(&v.ID, &v.Name, &v.ProductID, &v.ProductName, &v.CategoryID, &categoryName,
		&v.Price, &costPrice, &image, &contentType, &v.OwnerID, &archivedAt)
	if err != nil {
		return nil, err
	}

	if categoryName != nil {
		v.CategoryName = *categoryName
	}
	if costPrice.Valid {
		cp := costPrice.Decimal
		v.CostPrice = &cp
	}
	if len(image) > 0 {
		v.Image = &domain.Image{Data: image}
		if contentType != nil {
			v.Image.ContentType = *contentType
		}
	}
	v.ArchivedAt = archivedAt

	return &v, nil
}
