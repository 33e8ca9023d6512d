package middleware

import (
	"vibe-coding-tools/pkg/session"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the anonymous session cookie and injects the
// user id into the request context. It never creates users and never aborts:
// handlers decide whether an identity is required.
func SessionMiddleware(sessionService *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err == nil && token != "" {
			if claims, err := sessionService.ValidateToken(token); err == nil {
				c.Set("user_id", claims.UserID)
			}
		}

		c.Next()
	}
}
