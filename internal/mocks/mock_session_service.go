package mocks

import (
	"context"
	"net/http"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
)

// MockSessionService implements domain.SessionService interface for testing
type MockSessionService struct {
	HydrateFunc   func(ctx context.Context, w http.ResponseWriter, r *http.Request) *domain.Session
	LoginFunc     func(ctx context.Context, w http.ResponseWriter, creds domain.Credentials) (string, error)
	RegisterFunc  func(ctx context.Context, w http.ResponseWriter, data domain.Registration) (string, error)
	LogoutFunc    func(ctx context.Context, w http.ResponseWriter, r *http.Request) string
	LogoutAllFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request) string
}

// NewMockSessionService creates a new MockSessionService with default behaviors
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

// Hydrate resolves the per-request session
func (m *MockSessionService) Hydrate(ctx context.Context, w http.ResponseWriter, r *http.Request) *domain.Session {
	if m.HydrateFunc != nil {
		return m.HydrateFunc(ctx, w, r)
	}
	// Default behavior: anonymous session
	return &domain.Session{}
}

// Login authenticates and reports the redirect path
func (m *MockSessionService) Login(ctx context.Context, w http.ResponseWriter, creds domain.Credentials) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, w, creds)
	}
	return "/", nil
}

// Register signs up and reports the redirect path
func (m *MockSessionService) Register(ctx context.Context, w http.ResponseWriter, data domain.Registration) (string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, w, data)
	}
	return "/", nil
}

// Logout ends the current session
func (m *MockSessionService) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) string {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, w, r)
	}
	return "/login"
}

// LogoutAll ends every session for the user
func (m *MockSessionService) LogoutAll(ctx context.Context, w http.ResponseWriter, r *http.Request) string {
	if m.LogoutAllFunc != nil {
		return m.LogoutAllFunc(ctx, w, r)
	}
	return "/login"
}
