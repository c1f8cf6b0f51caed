package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/openlot/leadhub/internal/domain"
)

var (
	// ErrNoDealership is returned when a caller without a dealership tries
	// to create dealership-owned data.
	ErrNoDealership = errors.New("caller has no dealership")

	// ErrAssigneeMismatch is returned when a lead would be assigned to a
	// user from a different dealership.
	ErrAssigneeMismatch = errors.New("assignee belongs to a different dealership")
)

type leadService struct {
	leadRepo     domain.LeadRepository
	userRepo     domain.UserRepository
	activityRepo domain.ActivityRepository
	logger       *slog.Logger
}

func NewLeadService(leadRepo domain.LeadRepository, userRepo domain.UserRepository, activityRepo domain.ActivityRepository, logger *slog.Logger) LeadUseCase {
	return &leadService{
		leadRepo:     leadRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (s *leadService) Create(ctx context.Context, actor Actor, input CreateLeadInput) (*domain.Lead, error) {
	_, span := otel.Tracer("lead-service").Start(ctx, "CreateLead")
	defer span.End()

	if actor.DealershipID == nil {
		return nil, ErrNoDealership
	}

	now := time.Now()
	lead := &domain.Lead{
		ID:              uuid.New(),
		DealershipID:    *actor.DealershipID,
		AssignedTo:      input.AssignedTo,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		VehicleInterest: input.VehicleInterest,
		Source:          input.Source,
		Notes:           input.Notes,
		Priority:        input.Priority,
		Status:          domain.StatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if lead.Source == "" {
		lead.Source = domain.SourceManual
	}
	if lead.Priority == "" {
		lead.Priority = domain.PriorityMedium
	}

	if lead.AssignedTo != nil {
		if err := s.checkAssignee(ctx, *lead.AssignedTo, lead.DealershipID); err != nil {
			return nil, err
		}
	}

	if err := s.leadRepo.Store(ctx, lead); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, lead.ID, &actor.UserID, domain.ActivityCreated,
		fmt.Sprintf("Lead created (source: %s)", lead.Source))

	return lead, nil
}

func (s *leadService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Lead, error) {
	return s.leadRepo.FindByID(ctx, id, actor.Scope())
}

func (s *leadService) List(ctx context.Context, actor Actor, input ListLeadsInput) ([]*domain.Lead, error) {
	_, span := otel.Tracer("lead-service").Start(ctx, "ListLeads")
	defer span.End()

	filter := domain.LeadFilter{
		// Narrow ignores the requested dealership for non-admin callers.
		Scope:  actor.Scope().Narrow(input.DealershipID),
		Status: input.Status,
	}
	return s.leadRepo.List(ctx, filter)
}

// Update applies a partial update: every nil input field keeps the stored
// value. The lead is looked up within the actor's scope first, so an id in
// a foreign dealership surfaces as ErrNotFound.
func (s *leadService) Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateLeadInput) (*domain.Lead, error) {
	_, span := otel.Tracer("lead-service").Start(ctx, "UpdateLead")
	defer span.End()

	lead, err := s.leadRepo.FindByID(ctx, id, actor.Scope())
	if err != nil {
		return nil, err
	}

	prevStatus := lead.Status
	prevAssignee := lead.AssignedTo

	if input.CustomerName != nil {
		lead.CustomerName = *input.CustomerName
	}
	if input.CustomerEmail != nil {
		lead.CustomerEmail = *input.CustomerEmail
	}
	if input.CustomerPhone != nil {
		lead.CustomerPhone = *input.CustomerPhone
	}
	if input.VehicleInterest != nil {
		lead.VehicleInterest = *input.VehicleInterest
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}
	if input.Priority != nil {
		lead.Priority = *input.Priority
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.AssignedTo != nil {
		if err := s.checkAssignee(ctx, *input.AssignedTo, lead.DealershipID); err != nil {
			return nil, err
		}
		lead.AssignedTo = input.AssignedTo
	}
	lead.UpdatedAt = time.Now()

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}

	if lead.Status != prevStatus {
		s.recordActivity(ctx, lead.ID, &actor.UserID, domain.ActivityStatusChanged,
			fmt.Sprintf("Status changed from %s to %s", prevStatus, lead.Status))
	}
	if input.AssignedTo != nil && (prevAssignee == nil || *prevAssignee != *input.AssignedTo) {
		s.recordActivity(ctx, lead.ID, &actor.UserID, domain.ActivityAssigned,
			fmt.Sprintf("Lead assigned to user %s", input.AssignedTo))
	}

	return lead, nil
}

func (s *leadService) ListActivities(ctx context.Context, actor Actor, leadID uuid.UUID) ([]*domain.Activity, error) {
	// Scope check first: the trail of an invisible lead is invisible too.
	if _, err := s.leadRepo.FindByID(ctx, leadID, actor.Scope()); err != nil {
		return nil, err
	}
	return s.activityRepo.FindByLeadID(ctx, leadID)
}

func (s *leadService) AddActivity(ctx context.Context, actor Actor, leadID uuid.UUID, input AddActivityInput) (*domain.Activity, error) {
	if _, err := s.leadRepo.FindByID(ctx, leadID, actor.Scope()); err != nil {
		return nil, err
	}

	activity := &domain.Activity{
		ID:          uuid.New(),
		LeadID:      leadID,
		UserID:      &actor.UserID,
		Type:        input.Type,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	if activity.Type == "" {
		activity.Type = domain.ActivityNote
	}

	if err := s.activityRepo.Store(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// checkAssignee enforces the invariant that a lead's dealership matches its
// assigned user's dealership.
func (s *leadService) checkAssignee(ctx context.Context, assigneeID, dealershipID uuid.UUID) error {
	assignee, err := s.userRepo.FindByID(ctx, assigneeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAssigneeMismatch
		}
		return err
	}
	if assignee.DealershipID == nil || *assignee.DealershipID != dealershipID {
		return ErrAssigneeMismatch
	}
	return nil
}

// recordActivity appends to the audit trail. Trail writes are best-effort:
// with single-statement atomicity only, a failed trail insert must not fail
// the update that already committed.
func (s *leadService) recordActivity(ctx context.Context, leadID uuid.UUID, userID *uuid.UUID, typ domain.ActivityType, desc string) {
	err := s.activityRepo.Store(ctx, &domain.Activity{
		ID:          uuid.New(),
		LeadID:      leadID,
		UserID:      userID,
		Type:        typ,
		Description: desc,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		s.logger.Warn("failed to record lead activity", "error", err, "lead_id", leadID, "type", typ)
	}
}
