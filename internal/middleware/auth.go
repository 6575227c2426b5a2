package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mosaops/timesheet-backend-go/internal/service"
	"github.com/mosaops/timesheet-backend-go/pkg/response"
)

// Context keys set for authenticated requests.
const (
	CtxUserID   = "userID"
	CtxUsername = "username"
)

// Auth middleware requires a valid bearer token and exposes the caller's
// identity on the context.
func Auth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}

// UserID returns the authenticated user's id from the context, 0 when the
// request is unauthenticated.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
