package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthrecord-api/internal/handler"
	"github.com/jwalitptl/healthrecord-api/pkg/auth"
)

func newAuthTestEngine(tokenSvc auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", NewAuthMiddleware(tokenSvc).Authenticate(), func(c *gin.Context) {
		id, ok := handler.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing user id"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	return engine
}

func TestAuthenticateMissingHeader(t *testing.T) {
	engine := newAuthTestEngine(auth.NewJWTService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	engine := newAuthTestEngine(auth.NewJWTService("secret", time.Hour))

	for _, header := range []string{"garbage", "Bearer", "Basic abc123"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, "header %q", header)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	expired := auth.NewJWTService("secret", -time.Minute)
	token, err := expired.GenerateToken(uuid.New())
	require.NoError(t, err)

	engine := newAuthTestEngine(auth.NewJWTService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	tokenSvc := auth.NewJWTService("secret", time.Hour)
	userID := uuid.New()
	token, err := tokenSvc.GenerateToken(userID)
	require.NoError(t, err)

	engine := newAuthTestEngine(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}
