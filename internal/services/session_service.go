package services

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
	"github.com/rifkifakhrudin2004/campus-portal/internal/infrastructure/store"
)

// SessionServiceImpl implements domain.SessionService. It owns every session
// transition and is the only writer of the token cookie and user cache; the
// guards and handlers only read.
type SessionServiceImpl struct {
	store   *store.SessionStore
	authAPI domain.AuthAPI
}

// NewSessionService creates a new session service
func NewSessionService(store *store.SessionStore, authAPI domain.AuthAPI) domain.SessionService {
	return &SessionServiceImpl{store: store, authAPI: authAPI}
}

// Hydrate implements domain.SessionService. With no token or no cached user
// it returns an anonymous session immediately without touching the network.
// Otherwise the cached user is used optimistically and validated against
// /auth/me: success refreshes the cache, failure clears the whole store. The
// loading flag is cleared exactly once on every path.
func (s *SessionServiceImpl) Hydrate(ctx context.Context, w http.ResponseWriter, r *http.Request) *domain.Session {
	sess := &domain.Session{Loading: true}
	defer func() { sess.Loading = false }()

	token, ok := s.store.Token(r)
	if !ok {
		return sess
	}

	cached, err := s.store.CachedUser(ctx, r)
	if err != nil {
		return sess
	}
	sess.User = cached

	fresh, err := s.authAPI.Me(ctx, token)
	if err != nil {
		log.Printf("session: token validation failed: %v", err)
		s.store.Clear(ctx, w, r)
		sess.User = nil
		return sess
	}

	sess.User = fresh
	if err := s.store.RefreshUser(ctx, token, fresh); err != nil {
		log.Printf("session: cache refresh failed: %v", err)
	}
	return sess
}

// Login implements domain.SessionService. On success the token and user are
// persisted and the caller is told where to send the browser; on failure the
// error propagates untouched and neither store half is written.
func (s *SessionServiceImpl) Login(ctx context.Context, w http.ResponseWriter, creds domain.Credentials) (string, error) {
	payload, err := s.authAPI.Login(ctx, creds)
	if err != nil {
		return "", err
	}
	if err := s.store.Persist(ctx, w, payload.Token, &payload.User); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}
	return domain.RedirectPath(payload.User.Role), nil
}

// Register implements domain.SessionService with the same contract as Login.
func (s *SessionServiceImpl) Register(ctx context.Context, w http.ResponseWriter, data domain.Registration) (string, error) {
	payload, err := s.authAPI.Register(ctx, data)
	if err != nil {
		return "", err
	}
	if err := s.store.Persist(ctx, w, payload.Token, &payload.User); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}
	return domain.RedirectPath(payload.User.Role), nil
}

// Logout implements domain.SessionService. The endpoint call may fail; the
// local session is cleared regardless, so logout always succeeds from the
// user's perspective.
func (s *SessionServiceImpl) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) string {
	return s.endSession(ctx, w, r, s.authAPI.Logout, "logout")
}

// LogoutAll implements domain.SessionService, invalidating every session for
// the user across devices before clearing the local one.
func (s *SessionServiceImpl) LogoutAll(ctx context.Context, w http.ResponseWriter, r *http.Request) string {
	return s.endSession(ctx, w, r, s.authAPI.LogoutAll, "logout-all")
}

func (s *SessionServiceImpl) endSession(ctx context.Context, w http.ResponseWriter, r *http.Request, call func(context.Context, string) error, label string) string {
	if token, ok := s.store.Token(r); ok {
		if err := call(ctx, token); err != nil {
			log.Printf("session: %s endpoint failed: %v", label, err)
		}
	}
	s.store.Clear(ctx, w, r)
	return "/login"
}
