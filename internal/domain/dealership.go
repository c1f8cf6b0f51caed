package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Dealership represents a single store. It is the tenancy boundary:
// every user and lead belongs to exactly one dealership.
type Dealership struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// DealershipRepository defines the interface for dealership persistence.
type DealershipRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Dealership, error)

	// FindDefault returns the oldest dealership row. Unauthenticated email
	// ingestion attaches its leads here.
	FindDefault(ctx context.Context) (*Dealership, error)

	Store(ctx context.Context, d *Dealership) error
}
