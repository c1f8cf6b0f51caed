package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("not found")
)

// UserRole defines the permission level of a user.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleSalesRep UserRole = "sales_rep"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSalesRep:
		return true
	}
	return false
}

// User represents a user account within a dealership. DealershipID is
// nullable only during bootstrap, before the user is attached to a store.
type User struct {
	ID           uuid.UUID  `json:"id"`
	DealershipID *uuid.UUID `json:"dealership_id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Not exposed in API responses
	Name         string     `json:"name"`
	Role         UserRole   `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Store(ctx context.Context, u *User) error
}
