package services

import (
	"context"
	"fmt"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
)

// UserServiceImpl implements domain.UserAPI over the remote user directory.
type UserServiceImpl struct {
	gateway domain.Gateway
}

// NewUserService creates a new user service
func NewUserService(gateway domain.Gateway) domain.UserAPI {
	return &UserServiceImpl{gateway: gateway}
}

// List implements domain.UserAPI
func (s *UserServiceImpl) List(ctx context.Context, token string) ([]domain.User, error) {
	var resp domain.APIResponse[[]domain.User]
	if err := s.gateway.Get(ctx, "/users", token, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &domain.APIError{Message: resp.Message}
	}
	return resp.Data, nil
}

// Get implements domain.UserAPI
func (s *UserServiceImpl) Get(ctx context.Context, token string, id uint) (*domain.User, error) {
	var resp domain.APIResponse[domain.User]
	if err := s.gateway.Get(ctx, fmt.Sprintf("/users/%d", id), token, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &domain.APIError{Message: resp.Message}
	}
	return &resp.Data, nil
}
