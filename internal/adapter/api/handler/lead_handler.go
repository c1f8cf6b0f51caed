package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openlot/leadhub/internal/adapter/api/middleware"
	"github.com/openlot/leadhub/internal/adapter/metrics"
	"github.com/openlot/leadhub/internal/domain"
	"github.com/openlot/leadhub/internal/usecase"
)

// LeadHandler handles lead CRUD and the activity trail.
type LeadHandler struct {
	useCase usecase.LeadUseCase
	logger  *slog.Logger
	metrics *metrics.APIMetrics
}

func NewLeadHandler(uc usecase.LeadUseCase, logger *slog.Logger, m *metrics.APIMetrics) *LeadHandler {
	return &LeadHandler{useCase: uc, logger: logger, metrics: m}
}

// actorFromRequest builds the use case actor from the token claims the
// auth middleware stored on the context.
func actorFromRequest(r *http.Request) (usecase.Actor, bool) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		return usecase.Actor{}, false
	}
	return usecase.Actor{
		UserID:       claims.UserID,
		Role:         claims.Role,
		DealershipID: claims.DealershipID,
	}, true
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	input := usecase.ListLeadsInput{
		Status: domain.LeadStatus(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("dealership_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid dealership_id")
			return
		}
		input.DealershipID = &id
	}

	leads, err := h.useCase.List(r.Context(), actor, input)
	if err != nil {
		respondUseCaseError(w, h.logger, err)
		return
	}
	if leads == nil {
		leads = []*domain.Lead{}
	}

	respondJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lead, err := h.useCase.Create(r.Context(), actor, input)
	if err != nil {
		respondUseCaseError(w, h.logger, err)
		return
	}

	if h.metrics != nil {
		h.metrics.LeadsCreatedTotal.WithLabelValues(string(lead.Source)).Inc()
	}
	respondJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	lead, err := h.useCase.Get(r.Context(), actor, id)
	if err != nil {
		respondUseCaseError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lead, err := h.useCase.Update(r.Context(), actor, id, input)
	if err != nil {
		respondUseCaseError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	activities, err := h.useCase.ListActivities(r.Context(), actor, leadID)
	if err != nil {
		respondUseCaseError(w, h.logger, err)
		return
	}
	if activities == nil {
		activities = []*domain.Activity{}
	}

	respondJSON(w, http.StatusOK, activities)
}

func (h *LeadHandler) AddActivity(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	var input usecase.AddActivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	activity, err := h.useCase.AddActivity(r.Context(), actor, leadID, input)
	if err != nil {
		respondUseCaseError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, activity)
}
