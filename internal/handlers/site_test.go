package handlers

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/internal/cache"
	"quill/internal/constants"
	"quill/internal/repository"
	"quill/internal/services"
	"quill/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type siteServices struct {
	articles *services.ArticleService
	pages    *services.PageService
	sections *services.SectionService
}

func newSiteRouter(t *testing.T) (*gin.Engine, siteServices) {
	t.Helper()

	db, err := utils.InitDatabase(":memory:")
	require.NoError(t, err)

	c := cache.New()
	articleService := services.NewArticleService(
		repository.NewArticleRepository(db),
		repository.NewCategoryRepository(db),
		c, slog.Default(),
	)
	pageService := services.NewPageService(repository.NewPageRepository(db), c)
	categoryService := services.NewCategoryService(repository.NewCategoryRepository(db), c)
	heroService := services.NewHeroService(repository.NewHeroRepository(db), c)
	sectionService := services.NewSectionService(repository.NewSectionRepository(db), c)

	h := NewSiteHandler(articleService, pageService, categoryService, heroService, sectionService)

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(
		`{{define "404.html"}}not found{{end}}` +
			`{{define "article.html"}}{{.article.Title}}|{{.article.Body}}{{end}}` +
			`{{define "page.html"}}{{.page.Title}}|{{.page.Body}}{{with .section}}|{{.Title}}{{end}}{{end}}`,
	)))
	r.GET("/article/:slug", h.ShowArticle)
	r.GET("/page/:slug", h.ShowPage)
	return r, siteServices{
		articles: articleService,
		pages:    pageService,
		sections: sectionService,
	}
}

func TestShowArticleRendersPublished(t *testing.T) {
	r, svc := newSiteRouter(t)

	_, err := svc.articles.Create(context.Background(), services.ArticleInput{
		Title:   "Hello, World! 2024",
		Content: "Some **bold** text.",
		Status:  constants.StatusPublished,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/article/hello-world-2024", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello, World! 2024")
	assert.Contains(t, w.Body.String(), "<strong>bold</strong>")
}

func TestShowArticleHidesDrafts(t *testing.T) {
	r, svc := newSiteRouter(t)

	_, err := svc.articles.Create(context.Background(), services.ArticleInput{
		Title:   "Work in progress",
		Content: "Not ready yet.",
		Status:  constants.StatusDraft,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/article/work-in-progress", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestShowPageIncludesActiveSection(t *testing.T) {
	r, svc := newSiteRouter(t)
	ctx := context.Background()

	_, err := svc.pages.Create(ctx, services.PageInput{
		Title:       "About",
		Slug:        "about",
		Content:     "We write things.",
		IsPublished: true,
	})
	require.NoError(t, err)

	section, err := svc.sections.GetPageSection(ctx, "about")
	require.NoError(t, err)
	_, err = svc.sections.UpdatePageSectionContent(ctx, section.ID, "Our Team", "", "{}", true)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/page/about", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "We write things.")
	assert.Contains(t, w.Body.String(), "Our Team")
}

func TestShowPageSkipsInactiveSection(t *testing.T) {
	r, svc := newSiteRouter(t)
	ctx := context.Background()

	_, err := svc.pages.Create(ctx, services.PageInput{
		Title:       "About",
		Slug:        "about",
		Content:     "We write things.",
		IsPublished: true,
	})
	require.NoError(t, err)

	section, err := svc.sections.GetPageSection(ctx, "about")
	require.NoError(t, err)
	_, err = svc.sections.UpdatePageSectionContent(ctx, section.ID, "Our Team", "", "{}", false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/page/about", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "We write things.")
	assert.NotContains(t, w.Body.String(), "Our Team")
}

func TestShowArticleUnknownSlug(t *testing.T) {
	r, _ := newSiteRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/article/no-such-article", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
