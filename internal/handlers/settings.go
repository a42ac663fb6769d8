package handlers

import (
	"net/http"

	"quill/internal/models"
	"quill/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingService *services.SettingService
}

func NewSettingsHandler(settingService *services.SettingService) *SettingsHandler {
	return &SettingsHandler{settingService: settingService}
}

func (h *SettingsHandler) ShowSettingsPage(c *gin.Context) {
	// render injects the current settings from the context.
	render(c, http.StatusOK, "admin_settings.html", gin.H{
		"Title": "Settings",
	})
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid form data"})
		return
	}

	settingsToUpdate := make(map[string]string)
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			settingsToUpdate[key] = values[0]
		}
	}

	if err := h.settingService.UpdateSettings(settingsToUpdate); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Settings saved."})
}

func (h *SettingsHandler) ShowSEOPage(c *gin.Context) {
	render(c, http.StatusOK, "admin_seo.html", gin.H{
		"Title": "SEO",
		"seo":   h.settingService.GetSEO(),
	})
}

func (h *SettingsHandler) UpdateSEO(c *gin.Context) {
	var seo models.SEOSettings
	if err := c.ShouldBind(&seo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid SEO data: " + err.Error()})
		return
	}

	if err := h.settingService.UpdateSEO(seo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save SEO settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "SEO settings saved."})
}
