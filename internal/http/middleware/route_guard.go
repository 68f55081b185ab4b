package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
)

// protectedPrefixes require a token before the page renders; authOnlyPaths
// are the screens an authenticated user has no business on.
var (
	protectedPrefixes = []string{"/admin", "/dosen", "/mahasiswa"}
	authOnlyPaths     = map[string]bool{"/login": true, "/register": true}
)

// RouteGuard redirects on token presence alone, before any page handler runs.
// The token is opaque to the portal, so the role check lives in PageGuard;
// this guard only answers "is anyone logged in at all".
func RouteGuard(tokens domain.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, hasToken := tokens.Get(c.Request)
		path := c.Request.URL.Path

		if !hasToken && isProtected(path) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if hasToken && authOnlyPaths[path] {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}

func isProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
