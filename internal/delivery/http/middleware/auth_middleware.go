package middleware

import (
	"strings"

	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// SessionCookie holds the admin session token set by the OAuth callback.
const SessionCookie = "session_token"

// SessionToken reads the bearer token, falling back to the session cookie.
func SessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware admits only requests carrying a valid session for an allowlisted email.
func AuthMiddleware(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := authUC.ParseSession(SessionToken(c))
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserEmail), session.Email)
		c.Set(string(domain.KeySession), session)
		c.Next()
	}
}
