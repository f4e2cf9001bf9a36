package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecisionKind says what the edge guard wants done with a request.
type DecisionKind int

const (
	Allow DecisionKind = iota
	Redirect
)

// Decision is the guard's verdict for a path.
type Decision struct {
	Kind DecisionKind
	// Target is the redirect location when Kind is Redirect.
	Target string
}

// AccessTokenCookie is the cookie the guard inspects. Only its presence
// matters here; token validation belongs to the bearer middleware.
const AccessTokenCookie = "accessToken"

// LandingPath is where already-authenticated visitors of auth pages are sent.
const LandingPath = "/"

// authPages are pages that only make sense for anonymous visitors.
var authPages = map[string]bool{
	"/login":    true,
	"/register": true,
}

// protectedPrefixes are page prefixes that need an authenticated identity.
// The guard still allows them through: the API's bearer middleware is the
// authority, and redirect-on-miss there would mask expired tokens.
var protectedPrefixes = []string{
	"/admin",
	"/account",
}

// Decide classifies a path against the static route tables. It is pure so
// the classification can be tested without an HTTP stack.
func Decide(path string, hasCookie bool) Decision {
	if authPages[path] {
		if hasCookie {
			return Decision{Kind: Redirect, Target: LandingPath}
		}
		return Decision{Kind: Allow}
	}

	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return Decision{Kind: Allow}
		}
	}
	return Decision{Kind: Allow}
}

// RouteGuard applies Decide in front of page-level routes.
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := c.Cookie(AccessTokenCookie)
		hasCookie := err == nil

		decision := Decide(c.Request.URL.Path, hasCookie)
		if decision.Kind == Redirect {
			c.Redirect(http.StatusFound, decision.Target)
			c.Abort()
			return
		}
		c.Next()
	}
}
