package middleware

import (
	"context"
	"net/http"
	"strings"

	"eventdesk/internal/domain"
	jwtsvc "eventdesk/internal/pkg/jwt"
	"eventdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionReader checks that an issued token still has a live session.
type SessionReader interface {
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
}

// JWTAuth resolves the bearer token to a user id. A token is only accepted
// when its signature verifies AND a session row still exists for it, so
// signing out (deleting the session) kills the token immediately.
func JWTAuth(jwt *jwtsvc.Service, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortMessage(c, http.StatusUnauthorized, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortMessage(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		session, err := sessions.FindByToken(c.Request.Context(), tokenStr)
		if err != nil || session == nil {
			response.AbortMessage(c, http.StatusUnauthorized, "No session for token")
			return
		}

		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
