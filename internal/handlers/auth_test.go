package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quill/internal/constants"
	"quill/internal/repository"
	"quill/internal/services"
	"quill/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := utils.InitDatabase(":memory:")
	require.NoError(t, err)

	userService := services.NewUserService(repository.NewUserRepository(db), slog.Default())
	require.NoError(t, userService.EnsureAdmin(context.Background(), "admin@example.com", "s3cret"))

	authHandler := NewAuthHandler(userService)

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/admin/login", authHandler.Login)
	r.GET("/admin/logout", authHandler.Logout)
	r.GET("/session", func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(constants.SessionKeyUserID) == nil {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.String(http.StatusOK, session.Get(constants.SessionKeyUserRole).(string))
	})
	return r
}

func postLogin(t *testing.T, r *gin.Engine, email, password, next string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}
	if next != "" {
		form.Set("next", next)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessEstablishesSession(t *testing.T) {
	r := newAuthRouter(t)

	w := postLogin(t, r, "admin@example.com", "s3cret", "/admin/articles")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "/admin/articles", resp["redirect"])

	probe := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	r.ServeHTTP(probe, req)
	assert.Equal(t, http.StatusOK, probe.Code)
	assert.Equal(t, constants.RoleAdmin, probe.Body.String())
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := newAuthRouter(t)

	w := postLogin(t, r, "admin@example.com", "wrong", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginExternalNextFallsBack(t *testing.T) {
	r := newAuthRouter(t)

	w := postLogin(t, r, "admin@example.com", "s3cret", "https://evil.example/phish")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/admin", resp["redirect"])
}

func TestLogoutClearsSession(t *testing.T) {
	r := newAuthRouter(t)

	w := postLogin(t, r, "admin@example.com", "s3cret", "")
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	logout := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(logout, req)
	assert.Equal(t, http.StatusFound, logout.Code)

	probe := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/session", nil)
	for _, c := range logout.Result().Cookies() {
		req.AddCookie(c)
	}
	r.ServeHTTP(probe, req)
	assert.Equal(t, http.StatusUnauthorized, probe.Code)
}
