package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/openlot/leadhub/internal/adapter/api/middleware"
	"github.com/openlot/leadhub/internal/adapter/metrics"
	"github.com/openlot/leadhub/internal/usecase"
)

// AuthHandler handles login and profile requests.
type AuthHandler struct {
	useCase usecase.AuthUseCase
	logger  *slog.Logger
	metrics *metrics.APIMetrics
}

func NewAuthHandler(uc usecase.AuthUseCase, logger *slog.Logger, m *metrics.APIMetrics) *AuthHandler {
	return &AuthHandler{useCase: uc, logger: logger, metrics: m}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.useCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if h.metrics != nil {
			h.metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		respondUseCaseError(w, h.logger, err)
		return
	}

	if h.metrics != nil {
		h.metrics.LoginsTotal.WithLabelValues("success").Inc()
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.useCase.Profile(r.Context(), claims.UserID)
	if err != nil {
		respondUseCaseError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":            user.ID,
		"email":         user.Email,
		"name":          user.Name,
		"role":          user.Role,
		"dealership_id": user.DealershipID,
	})
}
