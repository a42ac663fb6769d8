package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"quill/internal/models"
	"quill/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryAdminHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryAdminHandler(categoryService *services.CategoryService) *CategoryAdminHandler {
	return &CategoryAdminHandler{categoryService: categoryService}
}

func (h *CategoryAdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load categories")
		return
	}

	render(c, http.StatusOK, "admin_categories.html", gin.H{
		"Title":      "Categories",
		"categories": categories,
	})
}

func (h *CategoryAdminHandler) SaveCategory(c *gin.Context) {
	var input services.CategoryInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid category data: " + err.Error()})
		return
	}

	idStr := c.PostForm("id")
	ctx := c.Request.Context()

	var (
		category *models.Category
		err      error
	)
	if idStr == "" || idStr == "0" {
		category, err = h.categoryService.Create(ctx, input)
	} else {
		id, parseErr := strconv.ParseUint(idStr, 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid category ID"})
			return
		}
		category, err = h.categoryService.Update(ctx, uint(id), input)
	}

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrSlugTaken) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"status": "error", "message": "Failed to save category: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category saved.",
		"id":      category.ID,
		"slug":    category.Slug,
	})
}

func (h *CategoryAdminHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid category ID"})
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Category deleted."})
}
