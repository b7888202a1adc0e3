// internal/handlers/response.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/handlers/middleware"
)

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondServiceError maps service errors to status codes. Only invalid
// arguments echo the error text; the rest get a fixed message.
func respondServiceError(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		respondError(w, logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotOwned):
		respondError(w, logger, http.StatusForbidden, "Variant does not belong to this account")
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, logger, http.StatusNotFound, "Record not found")
	case errors.Is(err, domain.ErrTransientStore), errors.Is(err, context.DeadlineExceeded):
		logger.WarnContext(ctx, op+" failed, store unavailable", slog.String("error", err.Error()))
		respondError(w, logger, http.StatusServiceUnavailable, "Inventory store temporarily unavailable")
	default:
		logger.ErrorContext(ctx, op+" failed", slog.String("error", err.Error()))
		respondError(w, logger, http.StatusInternalServerError, "Internal server error")
	}
}

func identity(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (middleware.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, logger, http.StatusUnauthorized, "Missing tenant identity")
	}
	return id, ok
}

// optionalDimension parses a nullable size or color id from the query string.
// Absent, empty and "null" all mean untracked.
func optionalDimension(raw string) (domain.DimensionID, error) {
	if raw == "" || raw == "null" {
		return domain.Untracked(), nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return domain.Untracked(), errors.New("dimension ids must be positive integers")
	}
	return domain.Tracked(id), nil
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return n, nil
}
