package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/openlot/leadhub/internal/adapter/metrics"
	"github.com/openlot/leadhub/internal/usecase"
)

// EmailHandler handles the unauthenticated inbound email endpoint.
type EmailHandler struct {
	useCase usecase.EmailUseCase
	logger  *slog.Logger
	metrics *metrics.APIMetrics
}

func NewEmailHandler(uc usecase.EmailUseCase, logger *slog.Logger, m *metrics.APIMetrics) *EmailHandler {
	return &EmailHandler{useCase: uc, logger: logger, metrics: m}
}

type processEmailRequest struct {
	From         string `json:"from"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	ReceivedDate string `json:"receivedDate"`
}

func (h *EmailHandler) ProcessEmail(w http.ResponseWriter, r *http.Request) {
	var req processEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inbound := usecase.InboundEmail{
		From:    req.From,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if req.ReceivedDate != "" {
		// Best effort; an unparseable date falls back to receipt time.
		if t, err := time.Parse(time.RFC3339, req.ReceivedDate); err == nil {
			inbound.ReceivedDate = t
		}
	}

	lead, err := h.useCase.ProcessInbound(r.Context(), inbound)
	if err != nil {
		if h.metrics != nil {
			if errors.Is(err, usecase.ErrNoLeadExtracted) {
				h.metrics.EmailsTotal.WithLabelValues("rejected").Inc()
			} else {
				h.metrics.EmailsTotal.WithLabelValues("error").Inc()
			}
		}
		respondUseCaseError(w, h.logger, err)
		return
	}

	if h.metrics != nil {
		h.metrics.EmailsTotal.WithLabelValues("extracted").Inc()
		h.metrics.LeadsCreatedTotal.WithLabelValues(string(lead.Source)).Inc()
	}
	respondJSON(w, http.StatusCreated, lead)
}
