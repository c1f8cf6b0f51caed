package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LeadSource tags where a lead came from.
type LeadSource string

const (
	SourceManual  LeadSource = "manual"
	SourceWebsite LeadSource = "website"
	SourceEmail   LeadSource = "email"
	SourcePhone   LeadSource = "phone"
)

// LeadPriority ranks how urgently a lead should be worked.
type LeadPriority string

const (
	PriorityLow    LeadPriority = "low"
	PriorityMedium LeadPriority = "medium"
	PriorityHigh   LeadPriority = "high"
)

// LeadStatus tracks a lead through the sales pipeline.
type LeadStatus string

const (
	StatusNew         LeadStatus = "new"
	StatusContacted   LeadStatus = "contacted"
	StatusQualified   LeadStatus = "qualified"
	StatusNegotiating LeadStatus = "negotiating"
	StatusClosedWon   LeadStatus = "closed_won"
	StatusClosedLost  LeadStatus = "closed_lost"
)

// LeadStatuses lists every pipeline status, in pipeline order. Analytics
// reports a count per entry.
var LeadStatuses = []LeadStatus{
	StatusNew, StatusContacted, StatusQualified,
	StatusNegotiating, StatusClosedWon, StatusClosedLost,
}

// Lead is a prospective customer record tracked through the sales pipeline.
type Lead struct {
	ID              uuid.UUID    `json:"id"`
	DealershipID    uuid.UUID    `json:"dealership_id"`
	AssignedTo      *uuid.UUID   `json:"assigned_to"`
	CustomerName    string       `json:"customer_name"`
	CustomerEmail   string       `json:"customer_email"`
	CustomerPhone   string       `json:"customer_phone"`
	VehicleInterest string       `json:"vehicle_interest"`
	Source          LeadSource   `json:"source"`
	Notes           string       `json:"notes"`
	Priority        LeadPriority `json:"priority"`
	Status          LeadStatus   `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// LeadFilter narrows a lead listing. A zero-value field means "don't filter".
type LeadFilter struct {
	Scope  Scope
	Status LeadStatus
}

// StatusCount is one row of the analytics status breakdown.
type StatusCount struct {
	Status LeadStatus `json:"status"`
	Count  int64      `json:"count"`
}

// LeadRepository defines the interface for lead persistence and the
// aggregate counts that back analytics. Every read takes a Scope so
// dealership isolation is enforced in one place.
type LeadRepository interface {
	Store(ctx context.Context, l *Lead) error
	FindByID(ctx context.Context, id uuid.UUID, scope Scope) (*Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]*Lead, error)
	Update(ctx context.Context, l *Lead) error

	Count(ctx context.Context, scope Scope) (int64, error)
	CountSince(ctx context.Context, scope Scope, since time.Time) (int64, error)
	CountByStatus(ctx context.Context, scope Scope) ([]StatusCount, error)
}
