package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quotewall/backend/internal/api/httpx"
	"github.com/quotewall/backend/internal/models"
)

// writeErr maps the domain error taxonomy onto HTTP statuses. Anything
// unrecognized is a store failure: logged and surfaced as a bare 500.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		httpx.WriteError(w, http.StatusConflict, "duplicate_email", err.Error(), nil)
	case errors.Is(err, models.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", err.Error(), nil)
	case errors.Is(err, models.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, models.ErrSelfDeletion):
		httpx.WriteError(w, http.StatusBadRequest, "self_deletion", err.Error(), nil)
	case errors.Is(err, models.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "forbidden", err.Error(), nil)
	default:
		var v models.ErrValidation
		if errors.As(err, &v) {
			httpx.WriteError(w, http.StatusBadRequest, "validation", err.Error(), nil)
			return
		}
		slog.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
