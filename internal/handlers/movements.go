// internal/handlers/movements.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/core/ports"
)

// MovementHandler handles the append and history endpoints of the three movement logs
type MovementHandler struct {
	service         ports.MovementService
	defaultPageSize int
	logger          *slog.Logger
}

// NewMovementHandler creates a new movement handler
func NewMovementHandler(service ports.MovementService, defaultPageSize int, logger *slog.Logger) *MovementHandler {
	return &MovementHandler{
		service:         service,
		defaultPageSize: defaultPageSize,
		logger:          logger.With(slog.String("handler", "movements")),
	}
}

// StockIn handles POST /api/v1/stock-in
func (h *MovementHandler) StockIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	var req StockInRequest
	if !h.decode(w, r, &req) {
		return
	}

	event := req.ToDomain(id.UserID)
	eventID, err := h.service.RecordInflow(ctx, id.TenantID, event)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "record stock in", err)
		return
	}

	h.logger.InfoContext(ctx, "stock in recorded",
		slog.Int64("id", eventID),
		slog.String("key", event.Key.String()),
		slog.Int("quantity", event.Quantity))

	respondJSON(w, h.logger, http.StatusCreated, event)
}

// StockOut handles POST /api/v1/stock-out
func (h *MovementHandler) StockOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	var req StockOutRequest
	if !h.decode(w, r, &req) {
		return
	}

	event := req.ToDomain(id.UserID)
	eventID, err := h.service.RecordOutflow(ctx, id.TenantID, event)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "record stock out", err)
		return
	}

	h.logger.InfoContext(ctx, "stock out recorded",
		slog.Int64("id", eventID),
		slog.String("key", event.Key.String()),
		slog.Int("quantity", event.Quantity))

	respondJSON(w, h.logger, http.StatusCreated, event)
}

// StockAdjustment handles POST /api/v1/stock-adjustments
func (h *MovementHandler) StockAdjustment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	var req StockAdjustmentRequest
	if !h.decode(w, r, &req) {
		return
	}

	event := req.ToDomain(id.UserID)
	eventID, err := h.service.RecordAdjustment(ctx, id.TenantID, event)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "record stock adjustment", err)
		return
	}

	h.logger.InfoContext(ctx, "stock adjustment recorded",
		slog.Int64("id", eventID),
		slog.String("key", event.Key.String()),
		slog.Int64("signed_quantity", event.SignedQuantity()))

	respondJSON(w, h.logger, http.StatusCreated, event)
}

// ListStockIn handles GET /api/v1/stock-in?search=&from=&to=&page=&page_size=
func (h *MovementHandler) ListStockIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	q, ok := h.parseHistoryQuery(w, r, id.TenantID, false)
	if !ok {
		return
	}

	page, err := h.service.ListInflows(ctx, q)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "list stock in", err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, page)
}

// GetStockIn handles GET /api/v1/stock-in/{id}
func (h *MovementHandler) GetStockIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	eventID, ok := h.eventID(w, r)
	if !ok {
		return
	}

	event, err := h.service.GetInflow(ctx, id.TenantID, eventID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "get stock in", err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, event)
}

// ListStockOut handles GET /api/v1/stock-out?search=&from=&to=&page=&page_size=
func (h *MovementHandler) ListStockOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	q, ok := h.parseHistoryQuery(w, r, id.TenantID, false)
	if !ok {
		return
	}

	page, err := h.service.ListOutflows(ctx, q)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "list stock out", err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, page)
}

// GetStockOut handles GET /api/v1/stock-out/{id}
func (h *MovementHandler) GetStockOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	eventID, ok := h.eventID(w, r)
	if !ok {
		return
	}

	event, err := h.service.GetOutflow(ctx, id.TenantID, eventID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "get stock out", err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, event)
}

// ListStockAdjustments handles GET /api/v1/stock-adjustments?adjustment_type=&search=&from=&to=&page=&page_size=
func (h *MovementHandler) ListStockAdjustments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	q, ok := h.parseHistoryQuery(w, r, id.TenantID, true)
	if !ok {
		return
	}

	page, err := h.service.ListAdjustments(ctx, q)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "list stock adjustments", err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, page)
}

// GetStockAdjustment handles GET /api/v1/stock-adjustments/{id}
func (h *MovementHandler) GetStockAdjustment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	eventID, ok := h.eventID(w, r)
	if !ok {
		return
	}

	event, err := h.service.GetAdjustment(ctx, id.TenantID, eventID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "get stock adjustment", err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, event)
}

// DailyActivity handles GET /api/v1/movements/daily?days=
func (h *MovementHandler) DailyActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	days, err := intParam(r.URL.Query().Get("days"), 0)
	if err != nil || days < 0 {
		respondError(w, h.logger, http.StatusBadRequest, "days must be a positive integer")
		return
	}

	activity, err := h.service.DailyActivity(ctx, id.TenantID, days)
	if err != nil {
		respondServiceError(ctx, w, h.logger, "daily activity", err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"days":  activity,
		"count": len(activity),
	})
}

func (h *MovementHandler) eventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	eventID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || eventID <= 0 {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid event ID")
		return 0, false
	}
	return eventID, true
}

// parseHistoryQuery reads search, paging and an inclusive from/to day range.
// Range checks on paging are left to the service.
func (h *MovementHandler) parseHistoryQuery(w http.ResponseWriter, r *http.Request, tenantID int64,
	adjustments bool) (domain.MovementQuery, bool) {

	query := r.URL.Query()
	q := domain.MovementQuery{TenantID: tenantID, Search: query.Get("search")}

	var err error
	if q.Page, err = intParam(query.Get("page"), 1); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "page must be an integer")
		return q, false
	}
	if q.PageSize, err = intParam(query.Get("page_size"), h.defaultPageSize); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "page_size must be an integer")
		return q, false
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "from must be a date like 2006-01-02")
			return q, false
		}
		q.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "to must be a date like 2006-01-02")
			return q, false
		}
		until := to.AddDate(0, 0, 1)
		q.Until = &until
	}

	if raw := query.Get("adjustment_type"); raw != "" {
		if !adjustments {
			respondError(w, h.logger, http.StatusBadRequest, "adjustment_type only filters adjustments")
			return q, false
		}
		direction, err := domain.ParseDirection(raw)
		if err != nil {
			respondError(w, h.logger, http.StatusBadRequest, err.Error())
			return q, false
		}
		q.Direction = direction
	}

	return q, true
}

type validatable interface {
	Validate() error
}

func (h *MovementHandler) decode(w http.ResponseWriter, r *http.Request, req validatable) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// Request DTOs

// movementRequest holds the fields shared by the three logs
type movementRequest struct {
	VariantID int64              `json:"variant_id"`
	SizeID    domain.DimensionID `json:"size_id"`
	ColorID   domain.DimensionID `json:"color_id"`
	Quantity  int                `json:"quantity"`
	Timestamp *time.Time         `json:"timestamp,omitempty"`
}

// Validate only checks shape; quantity and cost rules are enforced after the
// ownership check in the service.
func (r *movementRequest) Validate() error {
	if r.VariantID <= 0 {
		return errors.New("variant_id is required")
	}
	return nil
}

func (r *movementRequest) movement(actorUserID int64) domain.Movement {
	m := domain.Movement{
		Key:         domain.StockKey{VariantID: r.VariantID, SizeID: r.SizeID, ColorID: r.ColorID},
		Quantity:    r.Quantity,
		ActorUserID: actorUserID,
	}
	if r.Timestamp != nil {
		m.Timestamp = r.Timestamp.UTC()
	}
	return m
}

// StockInRequest represents the request body for received stock
type StockInRequest struct {
	movementRequest
	UnitCost   decimal.Decimal `json:"unit_cost"`
	SupplierID *int64          `json:"supplier_id,omitempty"`
}

// ToDomain converts the request to an inflow event
func (r *StockInRequest) ToDomain(actorUserID int64) *domain.InflowEvent {
	return &domain.InflowEvent{
		Movement:   r.movement(actorUserID),
		UnitCost:   r.UnitCost,
		SupplierID: r.SupplierID,
	}
}

// StockOutRequest represents the request body for removed stock
type StockOutRequest struct {
	movementRequest
	Reason *string `json:"reason,omitempty"`
}

// ToDomain converts the request to an outflow event
func (r *StockOutRequest) ToDomain(actorUserID int64) *domain.OutflowEvent {
	return &domain.OutflowEvent{
		Movement: r.movement(actorUserID),
		Reason:   r.Reason,
	}
}

// StockAdjustmentRequest represents the request body for a signed correction
type StockAdjustmentRequest struct {
	movementRequest
	AdjustmentType string  `json:"adjustment_type"`
	Reason         *string `json:"reason,omitempty"`
}

// ToDomain converts the request to an adjustment event. An unrecognised
// adjustment type is passed through as-is and rejected by the service.
func (r *StockAdjustmentRequest) ToDomain(actorUserID int64) *domain.AdjustmentEvent {
	direction, err := domain.ParseDirection(r.AdjustmentType)
	if err != nil {
		direction = domain.Direction(r.AdjustmentType)
	}
	return &domain.AdjustmentEvent{
		Movement:  r.movement(actorUserID),
		Direction: direction,
		Reason:    r.Reason,
	}
}
