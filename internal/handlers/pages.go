package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"quill/internal/models"
	"quill/internal/services"

	"github.com/gin-gonic/gin"
)

type PageAdminHandler struct {
	pageService *services.PageService
}

func NewPageAdminHandler(pageService *services.PageService) *PageAdminHandler {
	return &PageAdminHandler{pageService: pageService}
}

func (h *PageAdminHandler) ListPages(c *gin.Context) {
	pages, err := h.pageService.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load pages")
		return
	}

	render(c, http.StatusOK, "admin_pages.html", gin.H{
		"Title": "Pages",
		"pages": pages,
	})
}

func (h *PageAdminHandler) NewPage(c *gin.Context) {
	render(c, http.StatusOK, "page_editor.html", gin.H{
		"Title": "New page",
		"page":  nil,
	})
}

func (h *PageAdminHandler) EditPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/pages")
		return
	}

	page, err := h.pageService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/pages")
		return
	}

	render(c, http.StatusOK, "page_editor.html", gin.H{
		"Title": "Edit page",
		"page":  page,
	})
}

func (h *PageAdminHandler) SavePage(c *gin.Context) {
	var input services.PageInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid page data: " + err.Error()})
		return
	}

	idStr := c.PostForm("id")
	ctx := c.Request.Context()

	var (
		page *models.Page
		err  error
	)
	if idStr == "" || idStr == "0" {
		page, err = h.pageService.Create(ctx, input)
	} else {
		id, parseErr := strconv.ParseUint(idStr, 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid page ID"})
			return
		}
		page, err = h.pageService.Update(ctx, uint(id), input)
	}

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrSlugTaken) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"status": "error", "message": "Failed to save page: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Page saved.",
		"id":      page.ID,
		"slug":    page.Slug,
	})
}

func (h *PageAdminHandler) DeletePage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid page ID"})
		return
	}

	if err := h.pageService.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Page deleted."})
}
