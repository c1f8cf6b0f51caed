package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/openlot/leadhub/internal/domain"
	"github.com/openlot/leadhub/internal/usecase"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase.
type MockAuthUseCase struct {
	LoginFunc   func(ctx context.Context, email, password string) (string, *domain.User, error)
	ProfileFunc func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *MockAuthUseCase) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.ProfileFunc(ctx, userID)
}

func TestAuthHandler_Login(t *testing.T) {
	dealership := uuid.New()
	user := &domain.User{
		ID:           uuid.New(),
		DealershipID: &dealership,
		Email:        "rep@example.com",
		PasswordHash: "never-serialized",
		Role:         domain.RoleSalesRep,
	}

	tests := []struct {
		name           string
		body           string
		loginErr       error
		expectedStatus int
	}{
		{"valid credentials", `{"email":"rep@example.com","password":"pw"}`, nil, http.StatusOK},
		{"bad credentials", `{"email":"rep@example.com","password":"nope"}`, usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"malformed body", `{"email":`, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockAuthUseCase{
				LoginFunc: func(ctx context.Context, email, password string) (string, *domain.User, error) {
					if tt.loginErr != nil {
						return "", nil, tt.loginErr
					}
					return "a.b.c", user, nil
				},
			}
			h := NewAuthHandler(uc, testLogger(), nil)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			h.Login(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusOK {
				var resp struct {
					Token string       `json:"token"`
					User  *domain.User `json:"user"`
				}
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.Token == "" || resp.User == nil {
					t.Error("response must carry token and user")
				}
				if bytes.Contains(rr.Body.Bytes(), []byte("never-serialized")) {
					t.Error("password hash leaked into the response")
				}
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				if bytes.Contains(rr.Body.Bytes(), []byte("token")) {
					t.Error("no token field expected on 401")
				}
			}
		})
	}
}
