package domain

import "github.com/google/uuid"

// Scope is the visibility predicate a role grants over dealership data.
// A nil DealershipID means unrestricted (admin); otherwise reads are
// confined to that dealership. Empty marks a scope that matches nothing.
// Repositories apply the scope so the "admin bypasses filter" check is
// not repeated across handlers.
type Scope struct {
	DealershipID *uuid.UUID
	Empty        bool
}

// ScopeFor returns the scope a user's role grants. Admins see every
// dealership; managers and sales reps see only their own. A non-admin
// without a dealership gets the empty scope: until the account is
// attached to a dealership it can read nothing, not everything.
func ScopeFor(role UserRole, dealershipID *uuid.UUID) Scope {
	if role == RoleAdmin {
		return Scope{}
	}
	if dealershipID == nil {
		return Scope{Empty: true}
	}
	return Scope{DealershipID: dealershipID}
}

// Narrow resolves a caller-requested dealership filter against the scope.
// An unrestricted scope honors the request; a restricted or empty scope
// ignores it.
func (s Scope) Narrow(requested *uuid.UUID) Scope {
	if s.Empty || s.DealershipID != nil {
		return s
	}
	return Scope{DealershipID: requested}
}

// Allows reports whether the scope permits access to the given dealership.
func (s Scope) Allows(dealershipID uuid.UUID) bool {
	if s.Empty {
		return false
	}
	return s.DealershipID == nil || *s.DealershipID == dealershipID
}
