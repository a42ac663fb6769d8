package handlers

import (
	"net/http"
	"strconv"

	"quill/internal/services"

	"github.com/gin-gonic/gin"
)

type SectionHandler struct {
	heroService    *services.HeroService
	sectionService *services.SectionService
}

func NewSectionHandler(heroService *services.HeroService, sectionService *services.SectionService) *SectionHandler {
	return &SectionHandler{heroService: heroService, sectionService: sectionService}
}

func (h *SectionHandler) ShowHeroPage(c *gin.Context) {
	hero, err := h.heroService.GetActive(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load hero content")
		return
	}

	render(c, http.StatusOK, "admin_hero.html", gin.H{
		"Title": "Hero",
		"hero":  hero,
	})
}

func (h *SectionHandler) SaveHero(c *gin.Context) {
	var input services.HeroInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid hero data: " + err.Error()})
		return
	}

	if _, err := h.heroService.Save(c.Request.Context(), input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save hero content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Hero content saved."})
}

func (h *SectionHandler) ListSections(c *gin.Context) {
	ctx := c.Request.Context()

	pageSections, err := h.sectionService.ListPageSections(ctx)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load sections")
		return
	}
	siteSections, err := h.sectionService.ListSiteSections(ctx)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load sections")
		return
	}

	render(c, http.StatusOK, "admin_sections.html", gin.H{
		"Title":        "Sections",
		"pageSections": pageSections,
		"siteSections": siteSections,
	})
}

func (h *SectionHandler) SavePageSection(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid section ID"})
		return
	}

	title := c.PostForm("title")
	subtitle := c.PostForm("subtitle")
	content := c.PostForm("content")
	isActive := c.PostForm("is_active") == "on" || c.PostForm("is_active") == "true"

	if _, err := h.sectionService.UpdatePageSectionContent(c.Request.Context(), uint(id), title, subtitle, content, isActive); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Failed to save section: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Section saved."})
}

func (h *SectionHandler) SaveSiteSection(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid section ID"})
		return
	}

	content := c.PostForm("content")
	isActive := c.PostForm("is_active") == "on" || c.PostForm("is_active") == "true"

	if _, err := h.sectionService.UpdateSiteSectionContent(c.Request.Context(), uint(id), content, isActive); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Failed to save section: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Section saved."})
}
