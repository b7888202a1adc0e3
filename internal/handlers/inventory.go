// internal/handlers/inventory.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
)

// InventoryHandler handles inventory view HTTP requests
type InventoryHandler struct {
	service         ports.InventoryService
	defaultPageSize int
	lowStockLimit   int
	logger          *slog.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service ports.InventoryService, defaultPageSize, lowStockLimit int, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		service:         service,
		defaultPageSize: defaultPageSize,
		lowStockLimit:   lowStockLimit,
		logger:          logger.With(slog.String("handler", "inventory")),
	}
}

// ListInventory handles GET /api/v1/inventory
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	params, err := h.parseListParams(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	params.TenantID = id.TenantID

	result, err := h.service.List(ctx, params)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "list inventory", err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// GetDetails handles GET /api/v1/inventory/{variantID}?size_id=&color_id=
func (h *InventoryHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	key, err := parseKey(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	row, err := h.service.GetDetails(ctx, id.TenantID, key)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "get inventory details", err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, row)
}

// UpdateReorderLevel handles PUT /api/v1/inventory/{variantID}/reorder-level
func (h *InventoryHandler) UpdateReorderLevel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	variantID, err := strconv.ParseInt(r.PathValue("variantID"), 10, 64)
	if err != nil || variantID <= 0 {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid variant ID")
		return
	}

	var req UpdateReorderLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	key := domain.StockKey{VariantID: variantID, SizeID: req.SizeID, ColorID: req.ColorID}
	record, err := h.service.UpdateReorderLevel(ctx, id.TenantID, id.UserID, key, *req.ReorderLevel)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "update reorder level", err)
		return
	}

	h.logger.InfoContext(ctx, "reorder level updated",
		slog.String("key", key.String()),
		slog.Int("reorder_level", record.ReorderLevel))

	respondJSON(w, h.logger, http.StatusOK, record)
}

// LowStock handles GET /api/v1/inventory/low-stock?limit=
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	limit, err := intParam(r.URL.Query().Get("limit"), h.lowStockLimit)
	if err != nil || limit <= 0 {
		respondError(w, h.logger, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	rows, err := h.service.LowStock(ctx, id.TenantID, limit)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "low stock", err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"items": rows,
		"count": len(rows),
	})
}

// Dashboard handles GET /api/v1/inventory/dashboard
func (h *InventoryHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	stats, err := h.service.DashboardStats(ctx, id.TenantID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "dashboard stats", err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, stats)
}

// parseListParams reads search and pagination. Range checks are left to the service.
func (h *InventoryHandler) parseListParams(r *http.Request) (ports.ListParams, error) {
	query := r.URL.Query()
	params := ports.ListParams{Search: query.Get("search")}

	var err error
	if params.Page, err = intParam(query.Get("page"), 1); err != nil {
		return params, errors.New("page must be an integer")
	}
	if params.PageSize, err = intParam(query.Get("page_size"), h.defaultPageSize); err != nil {
		return params, errors.New("page_size must be an integer")
	}
	return params, nil
}

func parseKey(r *http.Request) (domain.StockKey, error) {
	variantID, err := strconv.ParseInt(r.PathValue("variantID"), 10, 64)
	if err != nil || variantID <= 0 {
		return domain.StockKey{}, errors.New("invalid variant ID")
	}

	size, err := optionalDimension(r.URL.Query().Get("size_id"))
	if err != nil {
		return domain.StockKey{}, err
	}
	color, err := optionalDimension(r.URL.Query().Get("color_id"))
	if err != nil {
		return domain.StockKey{}, err
	}

	return domain.StockKey{VariantID: variantID, SizeID: size, ColorID: color}, nil
}

// Request DTOs

// UpdateReorderLevelRequest is the body of a reorder level update.
// Omitted or null size and color ids address the untracked dimension.
type UpdateReorderLevelRequest struct {
	SizeID       domain.DimensionID `json:"size_id"`
	ColorID      domain.DimensionID `json:"color_id"`
	ReorderLevel *int               `json:"reorder_level"`
}

// Validate checks the request. Negative levels are rejected by the service
// once ownership is established.
func (r *UpdateReorderLevelRequest) Validate() error {
	if r.ReorderLevel == nil {
		return errors.New("reorder_level is required")
	}
	return nil
}
