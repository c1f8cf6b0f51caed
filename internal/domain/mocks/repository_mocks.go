package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openlot/leadhub/internal/domain"
)

// MockUserRepository is a mock implementation of domain.UserRepository.
type MockUserRepository struct {
	mu          sync.Mutex
	Users       []*domain.User
	StoredUsers []*domain.User
	FindErr     error
	StoreErr    error
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, u := range m.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) Store(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Users = append(m.Users, u)
	m.StoredUsers = append(m.StoredUsers, u)
	return nil
}

// MockDealershipRepository is a mock implementation of domain.DealershipRepository.
type MockDealershipRepository struct {
	mu          sync.Mutex
	Dealerships []*domain.Dealership
	FindErr     error
	StoreErr    error
}

func (m *MockDealershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Dealership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, d := range m.Dealerships {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockDealershipRepository) FindDefault(ctx context.Context) (*domain.Dealership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	if len(m.Dealerships) == 0 {
		return nil, domain.ErrNotFound
	}
	return m.Dealerships[0], nil
}

func (m *MockDealershipRepository) Store(ctx context.Context, d *domain.Dealership) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Dealerships = append(m.Dealerships, d)
	return nil
}

// MockLeadRepository is a mock implementation of domain.LeadRepository.
// Reads honor the scope the same way the Postgres repository does.
type MockLeadRepository struct {
	mu          sync.Mutex
	Leads       []*domain.Lead
	StoredLeads []*domain.Lead
	Updated     []*domain.Lead
	StoreErr    error
	FindErr     error
	UpdateErr   error
	CountErr    error
}

func (m *MockLeadRepository) Store(ctx context.Context, l *domain.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Leads = append(m.Leads, l)
	m.StoredLeads = append(m.StoredLeads, l)
	return nil
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id uuid.UUID, scope domain.Scope) (*domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, l := range m.Leads {
		if l.ID == id && scope.Allows(l.DealershipID) {
			cp := *l
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockLeadRepository) List(ctx context.Context, filter domain.LeadFilter) ([]*domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []*domain.Lead
	for _, l := range m.Leads {
		if !filter.Scope.Allows(l.DealershipID) {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *MockLeadRepository) Update(ctx context.Context, l *domain.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i, existing := range m.Leads {
		if existing.ID == l.ID {
			cp := *l
			m.Leads[i] = &cp
		}
	}
	m.Updated = append(m.Updated, l)
	return nil
}

func (m *MockLeadRepository) Count(ctx context.Context, scope domain.Scope) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	var count int64
	for _, l := range m.Leads {
		if scope.Allows(l.DealershipID) {
			count++
		}
	}
	return count, nil
}

func (m *MockLeadRepository) CountSince(ctx context.Context, scope domain.Scope, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	var count int64
	for _, l := range m.Leads {
		if scope.Allows(l.DealershipID) && !l.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (m *MockLeadRepository) CountByStatus(ctx context.Context, scope domain.Scope) ([]domain.StatusCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountErr != nil {
		return nil, m.CountErr
	}
	byStatus := map[domain.LeadStatus]int64{}
	for _, l := range m.Leads {
		if scope.Allows(l.DealershipID) {
			byStatus[l.Status]++
		}
	}
	var counts []domain.StatusCount
	for status, count := range byStatus {
		counts = append(counts, domain.StatusCount{Status: status, Count: count})
	}
	return counts, nil
}

// MockActivityRepository is a mock implementation of domain.ActivityRepository.
type MockActivityRepository struct {
	mu         sync.Mutex
	Activities []*domain.Activity
	StoreErr   error
	FindErr    error
}

func (m *MockActivityRepository) Store(ctx context.Context, a *domain.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Activities = append(m.Activities, a)
	return nil
}

func (m *MockActivityRepository) FindByLeadID(ctx context.Context, leadID uuid.UUID) ([]*domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []*domain.Activity
	for _, a := range m.Activities {
		if a.LeadID == leadID {
			out = append(out, a)
		}
	}
	return out, nil
}

// MockEmailLogRepository is a mock implementation of domain.EmailLogRepository.
type MockEmailLogRepository struct {
	mu        sync.Mutex
	Logs      []*domain.EmailLog
	Processed map[uuid.UUID]uuid.UUID
	StoreErr  error
	MarkErr   error
}

func (m *MockEmailLogRepository) Store(ctx context.Context, e *domain.EmailLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Logs = append(m.Logs, e)
	return nil
}

func (m *MockEmailLogRepository) MarkProcessed(ctx context.Context, id, leadID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MarkErr != nil {
		return m.MarkErr
	}
	if m.Processed == nil {
		m.Processed = make(map[uuid.UUID]uuid.UUID)
	}
	m.Processed[id] = leadID
	return nil
}
