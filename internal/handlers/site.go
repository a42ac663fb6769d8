package handlers

import (
	"math"
	"net/http"
	"strconv"

	"quill/internal/models"
	"quill/internal/services"
	"quill/internal/utils"

	"github.com/gin-gonic/gin"
)

const articlesPerPage = 10

type SiteHandler struct {
	articleService  *services.ArticleService
	pageService     *services.PageService
	categoryService *services.CategoryService
	heroService     *services.HeroService
	sectionService  *services.SectionService
}

func NewSiteHandler(articleService *services.ArticleService, pageService *services.PageService, categoryService *services.CategoryService, heroService *services.HeroService, sectionService *services.SectionService) *SiteHandler {
	return &SiteHandler{
		articleService:  articleService,
		pageService:     pageService,
		categoryService: categoryService,
		heroService:     heroService,
		sectionService:  sectionService,
	}
}

func (h *SiteHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	header := c.Writer.Header()
	header.Add("Link", `</static/css/style.css>; rel=preload; as=style`)
	header.Add("Link", `</static/js/main.js>; rel=preload; as=script`)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	articles, total, err := h.articleService.GetPublishedPage(ctx, page, articlesPerPage)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"error": "Failed to load articles.",
		})
		return
	}

	hero, err := h.heroService.GetActive(ctx)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"error": "Failed to load the page.",
		})
		return
	}

	// The expertise cards are optional; the home page renders without them.
	var cards []models.SectionCard
	if _, content, err := h.sectionService.GetSiteSection(ctx, "expertise_cards"); err == nil {
		if cs, ok := content.(models.CardsSection); ok {
			cards = cs.Cards
		}
	}

	totalPages := int(math.Ceil(float64(total) / float64(articlesPerPage)))
	pagination := utils.GeneratePagination(page, totalPages)

	render(c, http.StatusOK, "index.html", gin.H{
		"articles":   articles,
		"hero":       hero,
		"cards":      cards,
		"Pagination": pagination,
		"is_index":   true,
	})
}

func (h *SiteHandler) ShowArticle(c *gin.Context) {
	article, err := h.articleService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		render(c, http.StatusNotFound, "404.html", gin.H{})
		return
	}

	render(c, http.StatusOK, "article.html", gin.H{
		"article": article,
	})
}

func (h *SiteHandler) ShowCategory(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	category, err := h.categoryService.GetBySlug(ctx, slug)
	if err != nil {
		render(c, http.StatusNotFound, "404.html", gin.H{})
		return
	}

	articles, err := h.articleService.GetPublishedByCategory(ctx, slug, 50)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"error": "Failed to load articles.",
		})
		return
	}

	render(c, http.StatusOK, "category.html", gin.H{
		"category": category,
		"articles": articles,
	})
}

func (h *SiteHandler) ShowPage(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	page, err := h.pageService.GetPublishedBySlug(ctx, slug)
	if err != nil {
		render(c, http.StatusNotFound, "404.html", gin.H{})
		return
	}

	// An active section block keyed by the page slug is optional extra
	// content below the page body.
	var section *models.PageSection
	if s, err := h.sectionService.GetPageSection(ctx, slug); err == nil {
		section = s
	}

	render(c, http.StatusOK, "page.html", gin.H{
		"page":    page,
		"section": section,
	})
}

func (h *SiteHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	articles, total, err := h.articleService.SearchPublishedPage(c.Request.Context(), query, page, articlesPerPage)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"error": "Search failed.",
		})
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(articlesPerPage)))
	pagination := utils.GeneratePagination(page, totalPages)

	render(c, http.StatusOK, "search.html", gin.H{
		"articles":   articles,
		"query":      query,
		"total":      total,
		"Pagination": pagination,
	})
}

func (h *SiteHandler) NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{})
}
