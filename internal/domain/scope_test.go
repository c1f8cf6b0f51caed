package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestScopeFor(t *testing.T) {
	dealership := uuid.New()

	t.Run("admin is unrestricted", func(t *testing.T) {
		scope := ScopeFor(RoleAdmin, &dealership)
		if scope.DealershipID != nil {
			t.Errorf("admin scope should be unrestricted, got %v", scope.DealershipID)
		}
	})

	t.Run("manager and sales rep are confined", func(t *testing.T) {
		for _, role := range []UserRole{RoleManager, RoleSalesRep} {
			scope := ScopeFor(role, &dealership)
			if scope.DealershipID == nil || *scope.DealershipID != dealership {
				t.Errorf("%s scope should be confined to own dealership", role)
			}
		}
	})

	t.Run("non-admin without a dealership matches nothing", func(t *testing.T) {
		for _, role := range []UserRole{RoleManager, RoleSalesRep} {
			scope := ScopeFor(role, nil)
			if !scope.Empty {
				t.Errorf("%s scope without a dealership should be empty, got %+v", role, scope)
			}
			if scope.Allows(dealership) {
				t.Errorf("%s without a dealership must not see dealership data", role)
			}
		}
	})
}

func TestScopeNarrow(t *testing.T) {
	own := uuid.New()
	other := uuid.New()

	t.Run("unrestricted scope honors requested filter", func(t *testing.T) {
		narrowed := Scope{}.Narrow(&other)
		if narrowed.DealershipID == nil || *narrowed.DealershipID != other {
			t.Error("admin filter request should be honored")
		}
	})

	t.Run("restricted scope ignores requested filter", func(t *testing.T) {
		narrowed := Scope{DealershipID: &own}.Narrow(&other)
		if narrowed.DealershipID == nil || *narrowed.DealershipID != own {
			t.Error("non-admin must stay confined to own dealership")
		}
	})

	t.Run("nil request keeps scope", func(t *testing.T) {
		narrowed := Scope{DealershipID: &own}.Narrow(nil)
		if narrowed.DealershipID == nil || *narrowed.DealershipID != own {
			t.Error("nil request should not widen a restricted scope")
		}
	})

	t.Run("empty scope ignores requested filter", func(t *testing.T) {
		narrowed := Scope{Empty: true}.Narrow(&other)
		if !narrowed.Empty {
			t.Error("a requested filter must not widen the empty scope")
		}
	})
}

func TestScopeAllows(t *testing.T) {
	own := uuid.New()
	other := uuid.New()

	if !(Scope{}).Allows(other) {
		t.Error("unrestricted scope should allow any dealership")
	}
	if !(Scope{DealershipID: &own}).Allows(own) {
		t.Error("restricted scope should allow its own dealership")
	}
	if (Scope{DealershipID: &own}).Allows(other) {
		t.Error("restricted scope should reject a foreign dealership")
	}
	if (Scope{Empty: true}).Allows(own) {
		t.Error("empty scope should reject every dealership")
	}
}
