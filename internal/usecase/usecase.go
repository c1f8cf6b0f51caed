package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openlot/leadhub/internal/domain"
)

// Actor identifies the authenticated caller of a use case. It carries just
// enough of the token claims to derive a visibility scope.
type Actor struct {
	UserID       uuid.UUID
	Role         domain.UserRole
	DealershipID *uuid.UUID
}

// Scope returns the visibility scope the actor's role grants.
func (a Actor) Scope() domain.Scope {
	return domain.ScopeFor(a.Role, a.DealershipID)
}

// AuthUseCase defines the contract for authentication services.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// LeadUseCase defines the contract for lead management services.
type LeadUseCase interface {
	Create(ctx context.Context, actor Actor, input CreateLeadInput) (*domain.Lead, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Lead, error)
	List(ctx context.Context, actor Actor, input ListLeadsInput) ([]*domain.Lead, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateLeadInput) (*domain.Lead, error)
	ListActivities(ctx context.Context, actor Actor, leadID uuid.UUID) ([]*domain.Activity, error)
	AddActivity(ctx context.Context, actor Actor, leadID uuid.UUID, input AddActivityInput) (*domain.Activity, error)
}

// EmailUseCase defines the contract for inbound email ingestion.
type EmailUseCase interface {
	ProcessInbound(ctx context.Context, email InboundEmail) (*domain.Lead, error)
}

// AnalyticsUseCase defines the contract for the analytics summary.
type AnalyticsUseCase interface {
	Summary(ctx context.Context, actor Actor) (*AnalyticsSummary, error)
}

// CreateLeadInput carries the fields for a new lead. Zero-value Priority
// and Status fall back to medium/new.
type CreateLeadInput struct {
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerPhone   string              `json:"customer_phone"`
	VehicleInterest string              `json:"vehicle_interest"`
	Source          domain.LeadSource   `json:"source"`
	Notes           string              `json:"notes"`
	Priority        domain.LeadPriority `json:"priority"`
	AssignedTo      *uuid.UUID          `json:"assigned_to"`
}

// ListLeadsInput narrows a lead listing. DealershipID is only honored for
// admins; everyone else is forced to their own dealership.
type ListLeadsInput struct {
	Status       domain.LeadStatus
	DealershipID *uuid.UUID
}

// UpdateLeadInput is a partial update: nil fields keep the stored value.
type UpdateLeadInput struct {
	CustomerName    *string              `json:"customer_name"`
	CustomerEmail   *string              `json:"customer_email"`
	CustomerPhone   *string              `json:"customer_phone"`
	VehicleInterest *string              `json:"vehicle_interest"`
	Notes           *string              `json:"notes"`
	Priority        *domain.LeadPriority `json:"priority"`
	Status          *domain.LeadStatus   `json:"status"`
	AssignedTo      *uuid.UUID           `json:"assigned_to"`
}

// AddActivityInput carries a manual activity entry.
type AddActivityInput struct {
	Type        domain.ActivityType `json:"type"`
	Description string              `json:"description"`
}

// InboundEmail is a raw email handed to the extractor.
type InboundEmail struct {
	From         string    `json:"from"`
	Subject      string    `json:"subject"`
	Body         string    `json:"body"`
	ReceivedDate time.Time `json:"receivedDate"`
}

// AnalyticsSummary is the aggregate the analytics endpoint returns.
type AnalyticsSummary struct {
	TotalLeads      int64                `json:"total_leads"`
	LeadsLast7Days  int64                `json:"leads_last_7_days"`
	LeadsLast30Days int64                `json:"leads_last_30_days"`
	StatusBreakdown []domain.StatusCount `json:"status_breakdown"`
}
