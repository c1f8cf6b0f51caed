package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/openlot/leadhub/internal/domain"
	"github.com/openlot/leadhub/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondUseCaseError maps use case errors onto status codes. Anything not
// in the taxonomy is logged server-side and surfaced as a generic 500.
func respondUseCaseError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, usecase.ErrNoLeadExtracted):
		respondError(w, http.StatusBadRequest, "no lead could be extracted")
	case errors.Is(err, usecase.ErrNoDealership):
		respondError(w, http.StatusBadRequest, "caller has no dealership")
	case errors.Is(err, usecase.ErrAssigneeMismatch):
		respondError(w, http.StatusBadRequest, "assignee belongs to a different dealership")
	default:
		logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
