package handler

import (
	"log/slog"
	"net/http"

	"github.com/openlot/leadhub/internal/usecase"
)

// AnalyticsHandler serves the aggregate lead counts.
type AnalyticsHandler struct {
	useCase usecase.AnalyticsUseCase
	logger  *slog.Logger
}

func NewAnalyticsHandler(uc usecase.AnalyticsUseCase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{useCase: uc, logger: logger}
}

func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.useCase.Summary(r.Context(), actor)
	if err != nil {
		respondUseCaseError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
