package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// tokenCookieNames are the cookie name patterns browsers may carry a session
// token under, checked in order after the Authorization header.
var tokenCookieNames = []string{"token", "auth_token", "access_token", "sb-access-token"}

// BearerToken extracts an optional bearer token from the Authorization header
// or one of the known cookie name patterns. Returns the empty string when no
// token is present; the gateway never validates it, only passes it through.
func BearerToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		if token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")); token != "" {
			return token
		}
	}
	for _, name := range tokenCookieNames {
		if v, err := c.Cookie(name); err == nil && v != "" {
			return v
		}
	}
	return ""
}
