// internal/handlers/router.go
package handlers

import "net/http"

const apiV1 = "/api/v1"

// RegisterRoutes wires every endpoint onto mux. Routes under /api/v1 are
// wrapped with requireIdentity; health endpoints are not.
func RegisterRoutes(mux *http.ServeMux, inventory *InventoryHandler, movements *MovementHandler,
	health *HealthHandler, requireIdentity func(http.Handler) http.Handler) {

	if health != nil {
		mux.HandleFunc("GET /health", health.Health)
		mux.HandleFunc("GET /ready", health.Readiness)
	}

	api := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, requireIdentity(h))
	}

	// Inventory view
	api("GET "+apiV1+"/inventory", inventory.ListInventory)
	api("GET "+apiV1+"/inventory/low-stock", inventory.LowStock)
	api("GET "+apiV1+"/inventory/dashboard", inventory.Dashboard)
	api("GET "+apiV1+"/inventory/{variantID}", inventory.GetDetails)
	api("PUT "+apiV1+"/inventory/{variantID}/reorder-level", inventory.UpdateReorderLevel)

	// Movement logs
	api("POST "+apiV1+"/stock-in", movements.StockIn)
	api("POST "+apiV1+"/stock-out", movements.StockOut)
	api("POST "+apiV1+"/stock-adjustments", movements.StockAdjustment)

	// Movement history
	api("GET "+apiV1+"/stock-in", movements.ListStockIn)
	api("GET "+apiV1+"/stock-in/{id}", movements.GetStockIn)
	api("GET "+apiV1+"/stock-out", movements.ListStockOut)
	api("GET "+apiV1+"/stock-out/{id}", movements.GetStockOut)
	api("GET "+apiV1+"/stock-adjustments", movements.ListStockAdjustments)
	api("GET "+apiV1+"/stock-adjustments/{id}", movements.GetStockAdjustment)
	api("GET "+apiV1+"/movements/daily", movements.DailyActivity)
}
