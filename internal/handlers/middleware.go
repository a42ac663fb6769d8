package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"quill/internal/auth"
	"quill/internal/constants"
	"quill/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth redirects anonymous visitors to the login page, preserving the
// originally requested location for the post-login return.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.SessionKeyUserID)

		if userID == nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/admin/login?next="+next)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin renders an access-denied view for authenticated users without
// the admin role. The state is terminal: no admin data is fetched and no
// further redirect is attempted.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		role, _ := session.Get(constants.SessionKeyUserRole).(string)

		if role != constants.RoleAdmin {
			render(c, http.StatusForbidden, "access_denied.html", gin.H{
				"Title": "Access denied",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// APIAuthMiddleware checks for a valid Bearer token with the admin role.
func APIAuthMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1], jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		if claims.Role != constants.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}

		c.Set(constants.SessionKeyUserID, claims.UserID)
		c.Next()
	}
}

// SettingsMiddleware loads site settings and the session's login state into
// the request context for the templates.
func SettingsMiddleware(settingService *services.SettingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := settingService.GetAllSettings()
		if err != nil {
			// The site can still run on defaults.
			c.Set(constants.ContextKeySettings, make(map[string]string))
		} else {
			c.Set(constants.ContextKeySettings, settings)
		}

		session := sessions.Default(c)
		userID := session.Get(constants.SessionKeyUserID)
		role, _ := session.Get(constants.SessionKeyUserRole).(string)
		email, _ := session.Get(constants.SessionKeyEmail).(string)

		c.Set(constants.ContextKeyIsLoggedIn, userID != nil)
		c.Set(constants.ContextKeyIsAdmin, role == constants.RoleAdmin)
		c.Set(constants.ContextKeyUserEmail, email)

		c.Next()
	}
}

// render merges settings and login state into the template data.
func render(c *gin.Context, status int, templateName string, data gin.H) {
	if settings, exists := c.Get(constants.ContextKeySettings); exists {
		for key, value := range settings.(map[string]string) {
			if _, ok := data[key]; !ok {
				data[key] = value
			}
		}
	}

	if isLoggedIn, exists := c.Get(constants.ContextKeyIsLoggedIn); exists {
		data["IsLoggedIn"] = isLoggedIn
	}
	if isAdmin, exists := c.Get(constants.ContextKeyIsAdmin); exists {
		data["IsAdmin"] = isAdmin
	}
	if email, exists := c.Get(constants.ContextKeyUserEmail); exists {
		data["UserEmail"] = email
	}

	c.HTML(status, templateName, data)
}
