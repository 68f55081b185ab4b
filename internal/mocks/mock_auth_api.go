package mocks

import (
	"context"
	"time"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
)

// MockAuthAPI implements domain.AuthAPI interface for testing
type MockAuthAPI struct {
	LoginFunc     func(ctx context.Context, creds domain.Credentials) (*domain.AuthPayload, error)
	RegisterFunc  func(ctx context.Context, data domain.Registration) (*domain.AuthPayload, error)
	MeFunc        func(ctx context.Context, token string) (*domain.User, error)
	LogoutFunc    func(ctx context.Context, token string) error
	LogoutAllFunc func(ctx context.Context, token string) error

	// Call counters so tests can assert which endpoints were reached.
	LoginCalls     int
	RegisterCalls  int
	MeCalls        int
	LogoutCalls    int
	LogoutAllCalls int
}

// NewMockAuthAPI creates a new MockAuthAPI with default behaviors
func NewMockAuthAPI() *MockAuthAPI {
	return &MockAuthAPI{}
}

// Login authenticates against the fake remote API
func (m *MockAuthAPI) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthPayload, error) {
	m.LoginCalls++
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	// Default behavior: return a mahasiswa payload
	return &domain.AuthPayload{
		User: domain.User{
			ID:        1,
			Name:      "Budi Santoso",
			Email:     creds.Login,
			Role:      domain.RoleMahasiswa,
			NIM:       "2110511001",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Token:     "mock_token",
		TokenType: "Bearer",
	}, nil
}

// Register registers against the fake remote API
func (m *MockAuthAPI) Register(ctx context.Context, data domain.Registration) (*domain.AuthPayload, error) {
	m.RegisterCalls++
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, data)
	}
	return &domain.AuthPayload{
		User: domain.User{
			ID:        2,
			Name:      data.Name,
			Email:     data.Email,
			Phone:     data.Phone,
			Role:      data.Role,
			NIM:       data.NIM,
			NIP:       data.NIP,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Token:     "mock_token",
		TokenType: "Bearer",
	}, nil
}

// Me fetches the current user for a token
func (m *MockAuthAPI) Me(ctx context.Context, token string) (*domain.User, error) {
	m.MeCalls++
	if m.MeFunc != nil {
		return m.MeFunc(ctx, token)
	}
	return &domain.User{
		ID:        1,
		Name:      "Budi Santoso",
		Email:     "budi@kampus.ac.id",
		Role:      domain.RoleMahasiswa,
		NIM:       "2110511001",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// Logout invalidates the current session
func (m *MockAuthAPI) Logout(ctx context.Context, token string) error {
	m.LogoutCalls++
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

// LogoutAll invalidates every session for the user
func (m *MockAuthAPI) LogoutAll(ctx context.Context, token string) error {
	m.LogoutAllCalls++
	if m.LogoutAllFunc != nil {
		return m.LogoutAllFunc(ctx, token)
	}
	return nil
}
