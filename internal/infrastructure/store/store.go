// Package store persists the session's durable halves: the auth token in a
// browser cookie and the last-known user record in Redis. SessionStore keeps
// the two behind one front so they cannot drift apart unnoticed.
package store

import (
	"context"
	"net/http"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
)

// SessionStore unifies the token cookie and the user cache. A token without a
// cached user (or the reverse) is a recoverable inconsistency; callers treat
// it as an anonymous session.
type SessionStore struct {
	tokens domain.TokenStore
	users  domain.UserCache
}

func NewSessionStore(tokens domain.TokenStore, users domain.UserCache) *SessionStore {
	return &SessionStore{tokens: tokens, users: users}
}

// Token reads the auth token from the request cookie.
func (s *SessionStore) Token(r *http.Request) (string, bool) {
	return s.tokens.Get(r)
}

// CachedUser returns the cached user for the request's token.
// Returns domain.ErrNoToken when no cookie is present and
// domain.ErrUserCacheMiss when the cache has no (or a corrupt) entry.
func (s *SessionStore) CachedUser(ctx context.Context, r *http.Request) (*domain.User, error) {
	token, ok := s.tokens.Get(r)
	if !ok {
		return nil, domain.ErrNoToken
	}
	return s.users.Get(ctx, token)
}

// IsAuthenticated is true iff both a token and a cached user are present.
func (s *SessionStore) IsAuthenticated(ctx context.Context, r *http.Request) bool {
	user, err := s.CachedUser(ctx, r)
	return err == nil && user != nil
}

// Persist durably records a fresh token and user pair, setting the cookie and
// writing the cache entry.
func (s *SessionStore) Persist(ctx context.Context, w http.ResponseWriter, token string, user *domain.User) error {
	if err := s.users.Put(ctx, token, user); err != nil {
		return err
	}
	s.tokens.Set(w, token)
	return nil
}

// RefreshUser overwrites the cached user for an existing token, keeping the
// cache in step with the record the remote API just returned.
func (s *SessionStore) RefreshUser(ctx context.Context, token string, user *domain.User) error {
	return s.users.Put(ctx, token, user)
}

// Clear removes both halves. Cache deletion failures are ignored: the cookie
// is gone either way and the cache entry expires on its own TTL.
func (s *SessionStore) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if token, ok := s.tokens.Get(r); ok {
		_ = s.users.Delete(ctx, token)
	}
	s.tokens.Clear(w)
}
