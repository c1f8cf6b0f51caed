package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EmailLog records a raw inbound email, independent of whether lead
// extraction succeeded for it.
type EmailLog struct {
	ID        uuid.UUID  `json:"id"`
	Sender    string     `json:"sender"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Processed bool       `json:"processed"`
	LeadID    *uuid.UUID `json:"lead_id"`
	CreatedAt time.Time  `json:"created_at"`
}

// EmailLogRepository defines the interface for email log persistence.
type EmailLogRepository interface {
	Store(ctx context.Context, e *EmailLog) error

	// MarkProcessed flags the log entry as processed and links the lead
	// that was created from it.
	MarkProcessed(ctx context.Context, id, leadID uuid.UUID) error
}
