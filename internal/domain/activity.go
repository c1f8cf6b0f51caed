package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies an entry in a lead's audit trail.
type ActivityType string

const (
	ActivityCreated       ActivityType = "created"
	ActivityStatusChanged ActivityType = "status_changed"
	ActivityAssigned      ActivityType = "assigned"
	ActivityNote          ActivityType = "note"
	ActivityCall          ActivityType = "call"
	ActivityEmailReceived ActivityType = "email_received"
)

// Activity is one append-only entry in a lead's audit trail. UserID is nil
// for system-generated entries such as email ingestion.
type Activity struct {
	ID          uuid.UUID    `json:"id"`
	LeadID      uuid.UUID    `json:"lead_id"`
	UserID      *uuid.UUID   `json:"user_id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ActivityRepository defines the interface for activity persistence.
// Activities are insert-only; there is no update or delete.
type ActivityRepository interface {
	Store(ctx context.Context, a *Activity) error
	FindByLeadID(ctx context.Context, leadID uuid.UUID) ([]*Activity, error)
}
