package handlers

import (
	"errors"
	"net/http"
	"strings"

	"quill/internal/constants"
	"quill/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) ShowLoginPage(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(constants.SessionKeyUserID) != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{
		"Title": "Sign in",
		"Next":  safeNext(c.Query("next")),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.userService.Authenticate(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid email or password.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error.",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyUserID, user.ID)
	session.Set(constants.SessionKeyUserRole, user.Role)
	session.Set(constants.SessionKeyEmail, user.Email)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save session.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"redirect": safeNext(c.PostForm("next")),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// safeNext keeps post-login redirects on this site. Anything that is not a
// local path falls back to the admin dashboard.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/admin"
	}
	return next
}
