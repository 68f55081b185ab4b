package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
)

const sessionKey = "session"

// SessionFrom returns the session placed in the gin context by WithSession or
// PageGuard, or an anonymous session when neither ran.
func SessionFrom(c *gin.Context) *domain.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(*domain.Session); ok {
			return sess
		}
	}
	return &domain.Session{}
}

// WithSession hydrates the session for the request and stores it in the gin
// context without enforcing anything. Public pages use it to greet a
// logged-in user.
func WithSession(sessions domain.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Hydrate(c.Request.Context(), c.Writer, c.Request)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// PageGuard hydrates the session and enforces the page's role policy. The
// route guard already turned away tokenless requests; this layer handles what
// it cannot: a token that fails validation, and a valid user on the wrong
// dashboard. Mismatches go back to the root page. This is a cooperative
// check, the remote API independently rejects unauthorized requests.
func PageGuard(sessions domain.SessionService, policy domain.PolicyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Hydrate(c.Request.Context(), c.Writer, c.Request)
		c.Set(sessionKey, sess)

		if !sess.Authenticated() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		allowed, err := policy.CheckAccess(sess.Role(), path, c.Request.Method)
		if err != nil {
			log.Printf("pageguard: policy check failed: %v", err)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		if !allowed {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
