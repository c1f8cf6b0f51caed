package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/openlot/leadhub/internal/domain"
	"github.com/openlot/leadhub/internal/extractor"
)

// ErrNoLeadExtracted is returned when the extractor found nothing usable
// in an inbound email.
var ErrNoLeadExtracted = errors.New("no usable lead in email")

type emailService struct {
	emailLogRepo   domain.EmailLogRepository
	leadRepo       domain.LeadRepository
	activityRepo   domain.ActivityRepository
	dealershipRepo domain.DealershipRepository
	logger         *slog.Logger
}

func NewEmailService(
	emailLogRepo domain.EmailLogRepository,
	leadRepo domain.LeadRepository,
	activityRepo domain.ActivityRepository,
	dealershipRepo domain.DealershipRepository,
	logger *slog.Logger,
) EmailUseCase {
	return &emailService{
		emailLogRepo:   emailLogRepo,
		leadRepo:       leadRepo,
		activityRepo:   activityRepo,
		dealershipRepo: dealershipRepo,
		logger:         logger,
	}
}

// ProcessInbound logs the raw email, runs the extractor, and creates a lead
// from the candidate. The email log row is written before extraction so a
// record exists even when nothing usable is found.
func (s *emailService) ProcessInbound(ctx context.Context, email InboundEmail) (*domain.Lead, error) {
	_, span := otel.Tracer("email-service").Start(ctx, "ProcessInbound")
	defer span.End()

	receivedAt := email.ReceivedDate
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	emailLog := &domain.EmailLog{
		ID:        uuid.New(),
		Sender:    email.From,
		Subject:   email.Subject,
		Body:      email.Body,
		CreatedAt: receivedAt,
	}
	if err := s.emailLogRepo.Store(ctx, emailLog); err != nil {
		return nil, err
	}

	candidate, ok := extractor.Extract(email.From, email.Subject, email.Body)
	if !ok {
		s.logger.Info("inbound email yielded no lead", "sender", email.From, "email_log_id", emailLog.ID)
		return nil, ErrNoLeadExtracted
	}

	dealership, err := s.dealershipRepo.FindDefault(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lead := &domain.Lead{
		ID:              uuid.New(),
		DealershipID:    dealership.ID,
		CustomerName:    candidate.Name,
		CustomerEmail:   candidate.Email,
		CustomerPhone:   candidate.Phone,
		VehicleInterest: candidate.VehicleInterest,
		Source:          domain.SourceEmail,
		Notes:           candidate.Notes,
		Priority:        domain.PriorityMedium,
		Status:          domain.StatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.leadRepo.Store(ctx, lead); err != nil {
		return nil, err
	}

	// The statements below are best-effort: the lead already exists and
	// there is no multi-statement transaction to roll it back.
	if err := s.emailLogRepo.MarkProcessed(ctx, emailLog.ID, lead.ID); err != nil {
		s.logger.Warn("failed to mark email log processed", "error", err, "email_log_id", emailLog.ID)
	}
	_ = s.activityRepo.Store(ctx, &domain.Activity{
		ID:          uuid.New(),
		LeadID:      lead.ID,
		Type:        domain.ActivityEmailReceived,
		Description: "Lead created from inbound email: " + email.Subject,
		CreatedAt:   now,
	})

	return lead, nil
}
