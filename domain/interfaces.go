package domain

import (
	"context"
	"net/http"
)

// TokenStore persists the opaque auth token across page loads. The cookie
// implementation writes to the response and reads from the request; it never
// performs network I/O.
type TokenStore interface {
	Set(w http.ResponseWriter, token string)
	Get(r *http.Request) (string, bool)
	Clear(w http.ResponseWriter)
}

// UserCache persists the last-known user record keyed by token. The cached
// copy is never authoritative; it only avoids a blank page before the session
// is validated against the remote API. A corrupt record reads as a miss.
type UserCache interface {
	Put(ctx context.Context, token string, user *User) error
	Get(ctx context.Context, token string) (*User, error)
	Delete(ctx context.Context, token string) error
}

// Gateway is the single component allowed to reach the remote API. A
// non-empty token is attached as a bearer Authorization header.
type Gateway interface {
	Get(ctx context.Context, path, token string, out any) error
	Post(ctx context.Context, path, token string, body, out any) error
}

// AuthAPI wraps the remote authentication endpoints one-to-one. No retries,
// no caching; failures propagate unchanged to the caller.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*AuthPayload, error)
	Register(ctx context.Context, data Registration) (*AuthPayload, error)
	Me(ctx context.Context, token string) (*User, error)
	Logout(ctx context.Context, token string) error
	LogoutAll(ctx context.Context, token string) error
}

// UserAPI wraps the remote user directory endpoints.
type UserAPI interface {
	List(ctx context.Context, token string) ([]User, error)
	Get(ctx context.Context, token string, id uint) (*User, error)
}

// SessionService owns every transition of the session state and is the sole
// writer of the token store and user cache. Login/Register/Logout return the
// path the browser should be redirected to.
type SessionService interface {
	Hydrate(ctx context.Context, w http.ResponseWriter, r *http.Request) *Session
	Login(ctx context.Context, w http.ResponseWriter, creds Credentials) (string, error)
	Register(ctx context.Context, w http.ResponseWriter, data Registration) (string, error)
	Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) string
	LogoutAll(ctx context.Context, w http.ResponseWriter, r *http.Request) string
}

// PolicyService answers whether a role may reach a path. It backs the page
// guards; the remote API remains the real authority.
type PolicyService interface {
	CheckAccess(role, path, method string) (bool, error)
}
