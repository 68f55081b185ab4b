package services

import (
	"context"
	"fmt"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
)

// AuthServiceImpl implements domain.AuthAPI as thin typed wrappers over the
// remote authentication endpoints. One request per call; failures propagate
// unchanged so the caller decides how to surface them.
type AuthServiceImpl struct {
	gateway domain.Gateway
}

// NewAuthService creates a new auth service
func NewAuthService(gateway domain.Gateway) domain.AuthAPI {
	return &AuthServiceImpl{gateway: gateway}
}

// Login implements domain.AuthAPI
func (s *AuthServiceImpl) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthPayload, error) {
	var resp domain.APIResponse[domain.AuthPayload]
	if err := s.gateway.Post(ctx, "/auth/login", "", creds, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &domain.APIError{Message: resp.Message}
	}
	return &resp.Data, nil
}

// Register implements domain.AuthAPI
func (s *AuthServiceImpl) Register(ctx context.Context, data domain.Registration) (*domain.AuthPayload, error) {
	var resp domain.APIResponse[domain.AuthPayload]
	if err := s.gateway.Post(ctx, "/auth/register", "", data, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &domain.APIError{Message: resp.Message}
	}
	return &resp.Data, nil
}

// Me implements domain.AuthAPI
func (s *AuthServiceImpl) Me(ctx context.Context, token string) (*domain.User, error) {
	var resp domain.APIResponse[domain.User]
	if err := s.gateway.Get(ctx, "/auth/me", token, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &domain.APIError{Message: resp.Message}
	}
	return &resp.Data, nil
}

// Logout implements domain.AuthAPI
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	var resp domain.APIResponse[any]
	if err := s.gateway.Post(ctx, "/auth/logout", token, nil, &resp); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// LogoutAll implements domain.AuthAPI, invalidating every active session for
// the user across devices.
func (s *AuthServiceImpl) LogoutAll(ctx context.Context, token string) error {
	var resp domain.APIResponse[any]
	if err := s.gateway.Post(ctx, "/auth/logout-all", token, nil, &resp); err != nil {
		return fmt.Errorf("logout-all request failed: %w", err)
	}
	return nil
}
