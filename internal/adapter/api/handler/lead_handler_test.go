package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openlot/leadhub/internal/adapter/api/middleware"
	"github.com/openlot/leadhub/internal/domain"
	"github.com/openlot/leadhub/internal/usecase"
	"github.com/openlot/leadhub/pkg/util"
)

const testSecret = "test-secret"

// MockLeadUseCase is a mock implementation of usecase.LeadUseCase.
type MockLeadUseCase struct {
	CreateFunc         func(ctx context.Context, actor usecase.Actor, input usecase.CreateLeadInput) (*domain.Lead, error)
	GetFunc            func(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*domain.Lead, error)
	ListFunc           func(ctx context.Context, actor usecase.Actor, input usecase.ListLeadsInput) ([]*domain.Lead, error)
	UpdateFunc         func(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateLeadInput) (*domain.Lead, error)
	ListActivitiesFunc func(ctx context.Context, actor usecase.Actor, leadID uuid.UUID) ([]*domain.Activity, error)
	AddActivityFunc    func(ctx context.Context, actor usecase.Actor, leadID uuid.UUID, input usecase.AddActivityInput) (*domain.Activity, error)
}

func (m *MockLeadUseCase) Create(ctx context.Context, actor usecase.Actor, input usecase.CreateLeadInput) (*domain.Lead, error) {
	return m.CreateFunc(ctx, actor, input)
}

func (m *MockLeadUseCase) Get(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*domain.Lead, error) {
	return m.GetFunc(ctx, actor, id)
}

func (m *MockLeadUseCase) List(ctx context.Context, actor usecase.Actor, input usecase.ListLeadsInput) ([]*domain.Lead, error) {
	return m.ListFunc(ctx, actor, input)
}

func (m *MockLeadUseCase) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateLeadInput) (*domain.Lead, error) {
	return m.UpdateFunc(ctx, actor, id, input)
}

func (m *MockLeadUseCase) ListActivities(ctx context.Context, actor usecase.Actor, leadID uuid.UUID) ([]*domain.Activity, error) {
	return m.ListActivitiesFunc(ctx, actor, leadID)
}

func (m *MockLeadUseCase) AddActivity(ctx context.Context, actor usecase.Actor, leadID uuid.UUID, input usecase.AddActivityInput) (*domain.Activity, error) {
	return m.AddActivityFunc(ctx, actor, leadID, input)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newLeadRouter wires the handler behind the real auth middleware so the
// tests exercise the same claim plumbing as production.
func newLeadRouter(t *testing.T, uc usecase.LeadUseCase) http.Handler {
	t.Helper()
	h := NewLeadHandler(uc, testLogger(), nil)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(testSecret, testLogger()))
		r.Get("/api/leads", h.List)
		r.Post("/api/leads", h.Create)
		r.Get("/api/leads/{id}", h.Get)
		r.Put("/api/leads/{id}", h.Update)
	})
	return r
}

func bearerFor(t *testing.T, role domain.UserRole, dealershipID *uuid.UUID) string {
	t.Helper()
	token, err := util.GenerateToken(&domain.User{
		ID:           uuid.New(),
		Email:        "caller@example.com",
		Role:         role,
		DealershipID: dealershipID,
	}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return "Bearer " + token
}

func TestLeadHandler_List(t *testing.T) {
	own := uuid.New()
	foreign := uuid.New()

	t.Run("non-admin scope is forced before the repo is asked", func(t *testing.T) {
		var gotActor usecase.Actor
		var gotInput usecase.ListLeadsInput
		uc := &MockLeadUseCase{
			ListFunc: func(ctx context.Context, actor usecase.Actor, input usecase.ListLeadsInput) ([]*domain.Lead, error) {
				gotActor, gotInput = actor, input
				return nil, nil
			},
		}
		router := newLeadRouter(t, uc)

		req := httptest.NewRequest(http.MethodGet, "/api/leads?dealership_id="+foreign.String()+"&status=new", nil)
		req.Header.Set("Authorization", bearerFor(t, domain.RoleSalesRep, &own))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		if gotActor.Role != domain.RoleSalesRep {
			t.Errorf("actor role = %q", gotActor.Role)
		}
		if gotInput.Status != domain.StatusNew {
			t.Errorf("status filter = %q, want new", gotInput.Status)
		}
		// The handler passes the raw request through; the scope policy in
		// the use case is what discards it for non-admins.
		if gotInput.DealershipID == nil || *gotInput.DealershipID != foreign {
			t.Error("requested dealership filter should reach the use case")
		}
		if narrowed := gotActor.Scope().Narrow(gotInput.DealershipID); narrowed.DealershipID == nil || *narrowed.DealershipID != own {
			t.Error("scope policy must pin a non-admin to their own dealership")
		}
	})

	t.Run("empty result is a JSON array", func(t *testing.T) {
		uc := &MockLeadUseCase{
			ListFunc: func(ctx context.Context, actor usecase.Actor, input usecase.ListLeadsInput) ([]*domain.Lead, error) {
				return nil, nil
			},
		}
		router := newLeadRouter(t, uc)

		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		req.Header.Set("Authorization", bearerFor(t, domain.RoleAdmin, nil))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if body := rr.Body.String(); body != "[]\n" {
			t.Errorf("body = %q, want empty JSON array", body)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		router := newLeadRouter(t, &MockLeadUseCase{})
		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rr.Code)
		}
	})
}

func TestLeadHandler_Create(t *testing.T) {
	own := uuid.New()

	uc := &MockLeadUseCase{
		CreateFunc: func(ctx context.Context, actor usecase.Actor, input usecase.CreateLeadInput) (*domain.Lead, error) {
			return &domain.Lead{
				ID:           uuid.New(),
				DealershipID: *actor.DealershipID,
				CustomerName: input.CustomerName,
				Source:       domain.SourceManual,
				Status:       domain.StatusNew,
				Priority:     domain.PriorityMedium,
			}, nil
		},
	}
	router := newLeadRouter(t, uc)

	body := bytes.NewBufferString(`{"customer_name": "Maria Santos"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", body)
	req.Header.Set("Authorization", bearerFor(t, domain.RoleSalesRep, &own))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rr.Code)
	}

	var lead domain.Lead
	if err := json.NewDecoder(rr.Body).Decode(&lead); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if lead.CustomerName != "Maria Santos" || lead.Status != domain.StatusNew {
		t.Errorf("unexpected lead in response: %+v", lead)
	}
}

func TestLeadHandler_Update(t *testing.T) {
	own := uuid.New()

	t.Run("not found outside scope", func(t *testing.T) {
		uc := &MockLeadUseCase{
			UpdateFunc: func(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateLeadInput) (*domain.Lead, error) {
				return nil, domain.ErrNotFound
			},
		}
		router := newLeadRouter(t, uc)

		body := bytes.NewBufferString(`{"status": "contacted"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/leads/"+uuid.NewString(), body)
		req.Header.Set("Authorization", bearerFor(t, domain.RoleSalesRep, &own))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rr.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		router := newLeadRouter(t, &MockLeadUseCase{})

		req := httptest.NewRequest(http.MethodPut, "/api/leads/not-a-uuid", bytes.NewBufferString(`{}`))
		req.Header.Set("Authorization", bearerFor(t, domain.RoleSalesRep, &own))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rr.Code)
		}
	})

	t.Run("partial body reaches the use case as nil fields", func(t *testing.T) {
		var gotInput usecase.UpdateLeadInput
		uc := &MockLeadUseCase{
			UpdateFunc: func(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateLeadInput) (*domain.Lead, error) {
				gotInput = input
				return &domain.Lead{ID: id}, nil
			},
		}
		router := newLeadRouter(t, uc)

		body := bytes.NewBufferString(`{"status": "qualified"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/leads/"+uuid.NewString(), body)
		req.Header.Set("Authorization", bearerFor(t, domain.RoleSalesRep, &own))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		if gotInput.Status == nil || *gotInput.Status != domain.StatusQualified {
			t.Error("status field should be set")
		}
		if gotInput.CustomerName != nil || gotInput.Priority != nil {
			t.Error("absent fields must decode as nil")
		}
	})
}
