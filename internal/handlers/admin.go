package handlers

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"quill/internal/constants"
	"quill/internal/models"
	"quill/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	articleService  *services.ArticleService
	pageService     *services.PageService
	categoryService *services.CategoryService
	mediaService    *services.MediaService
}

func NewAdminHandler(articleService *services.ArticleService, pageService *services.PageService, categoryService *services.CategoryService, mediaService *services.MediaService) *AdminHandler {
	return &AdminHandler{
		articleService:  articleService,
		pageService:     pageService,
		categoryService: categoryService,
		mediaService:    mediaService,
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	articleCount, _ := h.articleService.Count(ctx)
	pageCount, _ := h.pageService.Count(ctx)
	categoryCount, _ := h.categoryService.Count(ctx)
	mediaCount, _ := h.mediaService.Count(ctx)

	drafts, err := h.articleService.ListByStatus(ctx, constants.StatusDraft)
	if err != nil {
		drafts = nil
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":         "Dashboard",
		"articleCount":  articleCount,
		"pageCount":     pageCount,
		"categoryCount": categoryCount,
		"mediaCount":    mediaCount,
		"drafts":        drafts,
	})
}

func (h *AdminHandler) ListArticles(c *gin.Context) {
	status := c.DefaultQuery("status", "all")

	articles, err := h.articleService.ListByStatus(c.Request.Context(), status)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load articles")
		return
	}

	session := sessions.Default(c)
	flashes := session.Flashes("success")
	session.Save()

	render(c, http.StatusOK, "admin_articles.html", gin.H{
		"Title":    "Articles",
		"articles": articles,
		"Status":   status,
		"Flashes":  flashes,
	})
}

func (h *AdminHandler) NewArticle(c *gin.Context) {
	categories, _ := h.categoryService.List(c.Request.Context())
	render(c, http.StatusOK, "editor.html", gin.H{
		"Title":      "New article",
		"article":    nil,
		"categories": categories,
	})
}

func (h *AdminHandler) EditArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/articles")
		return
	}

	ctx := c.Request.Context()
	article, err := h.articleService.GetByID(ctx, uint(id))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/articles")
		return
	}

	categories, _ := h.categoryService.List(ctx)
	render(c, http.StatusOK, "editor.html", gin.H{
		"Title":      "Edit article",
		"article":    article,
		"categories": categories,
	})
}

func (h *AdminHandler) SaveArticle(c *gin.Context) {
	var input services.ArticleInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid article data: " + err.Error()})
		return
	}

	idStr := c.PostForm("id")
	ctx := c.Request.Context()

	var (
		article *models.Article
		err     error
	)
	if idStr == "" || idStr == "0" {
		article, err = h.articleService.Create(ctx, input)
	} else {
		id, parseErr := strconv.ParseUint(idStr, 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid article ID"})
			return
		}
		article, err = h.articleService.Update(ctx, uint(id), input)
	}

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrSlugTaken) || errors.Is(err, services.ErrUnknownCategory) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"status": "error", "message": "Failed to save article: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article saved.",
		"id":      article.ID,
		"slug":    article.Slug,
	})
}

func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid article ID"})
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Article deleted."})
}

// ExportContent bundles all articles and pages into a zip download.
func (h *AdminHandler) ExportContent(c *gin.Context) {
	ctx := c.Request.Context()

	articles, err := h.articleService.ListByStatus(ctx, "all")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to load articles: " + err.Error()})
		return
	}
	pages, err := h.pageService.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to load pages: " + err.Error()})
		return
	}

	buf := new(bytes.Buffer)
	zipWriter := zip.NewWriter(buf)

	for name, v := range map[string]any{"articles.json": articles, "pages.json": pages} {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to encode content: " + err.Error()})
			return
		}
		zipFile, err := zipWriter.Create(name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to build archive: " + err.Error()})
			return
		}
		if _, err := zipFile.Write(data); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to write archive: " + err.Error()})
			return
		}
	}
	zipWriter.Close()

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quill_export_%s.zip", time.Now().Format("20060102150405")))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}
