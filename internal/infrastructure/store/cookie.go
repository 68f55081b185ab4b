package store

import (
	"net/http"
	"time"
)

// CookieTokenStore keeps the opaque auth token in a browser cookie. The token
// is issued by the remote API; the portal never inspects its contents.
type CookieTokenStore struct {
	name   string
	maxAge int
	secure bool
}

// NewCookieTokenStore creates a cookie-backed token store. ttl is the cookie
// lifetime; secure should be true whenever the portal is served over TLS.
func NewCookieTokenStore(name string, ttl time.Duration, secure bool) *CookieTokenStore {
	return &CookieTokenStore{
		name:   name,
		maxAge: int(ttl.Seconds()),
		secure: secure,
	}
}

// Set writes the token cookie. SameSite Lax scopes it to same-site
// navigations; HttpOnly keeps page scripts away from it.
func (s *CookieTokenStore) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   s.maxAge,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
		HttpOnly: true,
	})
}

// Get reads the token from the request cookie, reporting absence.
func (s *CookieTokenStore) Get(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Clear expires the token cookie.
func (s *CookieTokenStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
		HttpOnly: true,
	})
}
