package mocks

import (
	"context"
	"time"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
)

// MockUserAPI implements domain.UserAPI interface for testing
type MockUserAPI struct {
	ListFunc func(ctx context.Context, token string) ([]domain.User, error)
	GetFunc  func(ctx context.Context, token string, id uint) (*domain.User, error)

	ListCalls int
	GetCalls  int
}

// NewMockUserAPI creates a new MockUserAPI with default behaviors
func NewMockUserAPI() *MockUserAPI {
	return &MockUserAPI{}
}

// List returns the user directory
func (m *MockUserAPI) List(ctx context.Context, token string) ([]domain.User, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token)
	}
	now := time.Now()
	return []domain.User{
		{ID: 1, Name: "Admin Kampus", Email: "admin@kampus.ac.id", Role: domain.RoleAdmin, NIP: "197001011995011001", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Dewi Lestari", Email: "dewi@kampus.ac.id", Role: domain.RoleDosen, NIP: "198001012005011001", CreatedAt: now, UpdatedAt: now},
		{ID: 3, Name: "Budi Santoso", Email: "budi@kampus.ac.id", Role: domain.RoleMahasiswa, NIM: "2110511001", CreatedAt: now, UpdatedAt: now},
	}, nil
}

// Get returns a single user by id
func (m *MockUserAPI) Get(ctx context.Context, token string, id uint) (*domain.User, error) {
	m.GetCalls++
	if m.GetFunc != nil {
		return m.GetFunc(ctx, token, id)
	}
	now := time.Now()
	return &domain.User{ID: id, Name: "Budi Santoso", Email: "budi@kampus.ac.id", Role: domain.RoleMahasiswa, NIM: "2110511001", CreatedAt: now, UpdatedAt: now}, nil
}
