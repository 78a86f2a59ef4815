package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthrecord-api/internal/handler"
	"github.com/jwalitptl/healthrecord-api/pkg/auth"
)

type AuthMiddleware struct {
	tokenSvc auth.TokenService
}

func NewAuthMiddleware(tokenSvc auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's user
// id in the request context. A missing header is 401; a header that is
// present but malformed, expired, or badly signed is 403.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("unauthorized"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusForbidden, handler.NewErrorResponse("forbidden"))
			return
		}

		claims, err := m.tokenSvc.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, handler.NewErrorResponse("forbidden"))
			return
		}

		c.Set(handler.ContextUserID, claims.UserID)
		c.Next()
	}
}
