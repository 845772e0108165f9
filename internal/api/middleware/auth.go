package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/session"
)

const (
	// ContextKeyAdminID holds the key for the admin ID in Gin context.
	ContextKeyAdminID = "adminID"
	// LoginRedirect is where unauthenticated browsers are sent.
	LoginRedirect = "/auth/login"
)

// BearerToken extracts the console token from the Authorization header, or
// "" when absent or malformed.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// SessionGuard protects console routes. A request without a live session is
// answered with 401 and the login redirect; a live session is attached to
// the request context so the upstream client can read its credential.
func SessionGuard(sessions session.IManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := sessions.Authenticate(c.Request.Context(), BearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Authentication required",
				"redirect": LoginRedirect,
			})
			return
		}

		c.Request = c.Request.WithContext(session.WithRecord(c.Request.Context(), rec))
		c.Set(ContextKeyAdminID, rec.Admin.ID)
		c.Next()
	}
}
