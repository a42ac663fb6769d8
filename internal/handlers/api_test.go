package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quill/internal/auth"
	"quill/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTSecret = []byte("test-jwt-secret")

func newAPIRouter() *gin.Engine {
	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(APIAuthMiddleware(testJWTSecret))
	api.GET("/articles", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func apiRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAPIAuthMissingHeader(t *testing.T) {
	w := apiRequest(t, newAPIRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIAuthMalformedHeader(t *testing.T) {
	w := apiRequest(t, newAPIRouter(), "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIAuthInvalidToken(t *testing.T) {
	w := apiRequest(t, newAPIRouter(), "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIAuthWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken(1, constants.RoleAdmin, []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	w := apiRequest(t, newAPIRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIAuthNonAdminRole(t *testing.T) {
	token, err := auth.GenerateToken(2, constants.RoleEditor, testJWTSecret, time.Hour)
	require.NoError(t, err)

	w := apiRequest(t, newAPIRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAPIAuthAdminToken(t *testing.T) {
	token, err := auth.GenerateToken(1, constants.RoleAdmin, testJWTSecret, time.Hour)
	require.NoError(t, err)

	w := apiRequest(t, newAPIRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")
}
