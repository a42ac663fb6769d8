package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/internal/constants"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newGateRouter builds a router with the admin gate in place, a login helper
// to seed the session, and a probe that records whether the admin handler ran.
func newGateRouter(reached *bool) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("access_denied.html").Parse(`access denied`)))
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	r.POST("/test/login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(constants.SessionKeyUserID, uint(1))
		session.Set(constants.SessionKeyUserRole, c.Query("role"))
		if err := session.Save(); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	admin := r.Group("/admin")
	admin.Use(RequireAuth(), RequireAdmin())
	admin.GET("/articles", func(c *gin.Context) {
		if reached != nil {
			*reached = true
		}
		c.String(http.StatusOK, "articles")
	})

	return r
}

func loginAs(t *testing.T, r *gin.Engine, role string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test/login?role="+role, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func TestRequireAuthRedirectsAnonymousWithNext(t *testing.T) {
	r := newGateRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/articles?status=draft", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login?next=%2Fadmin%2Farticles%3Fstatus%3Ddraft", w.Header().Get("Location"))
}

func TestRequireAdminDeniesNonAdmin(t *testing.T) {
	reached := false
	r := newGateRouter(&reached)
	cookies := loginAs(t, r, constants.RoleEditor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/articles", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "access denied")
	assert.False(t, reached, "admin handler must not run for non-admin users")
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	reached := false
	r := newGateRouter(&reached)
	cookies := loginAs(t, r, constants.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/articles", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/admin", safeNext(""))
	assert.Equal(t, "/admin", safeNext("https://evil.example"))
	assert.Equal(t, "/admin", safeNext("//evil.example"))
	assert.Equal(t, "/admin/articles?status=draft", safeNext("/admin/articles?status=draft"))
}
