package services

import (
	"context"
	"log/slog"
	"testing"

	"quill/internal/cache"
	"quill/internal/repository"
	"quill/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := utils.InitDatabase(":memory:")
	require.NoError(t, err)
	return db
}

func newArticleService(t *testing.T) (*ArticleService, *CategoryService) {
	t.Helper()
	db := newTestDB(t)
	c := cache.New()
	logger := slog.Default()

	categoryRepo := repository.NewCategoryRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	return NewArticleService(articleRepo, categoryRepo, c, logger),
		NewCategoryService(categoryRepo, c)
}

func TestCreateArticleDerivesSlug(t *testing.T) {
	svc, _ := newArticleService(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, ArticleInput{Title: "Hello, World! 2024"})
	require.NoError(t, err)
	assert.Equal(t, "hello-world-2024", article.Slug)
	assert.Equal(t, "draft", article.Status)
	assert.True(t, article.PublishedAt.IsZero())
}

func TestCreateArticleUniqueSlugCounter(t *testing.T) {
	svc, _ := newArticleService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, ArticleInput{Title: "Same Title"})
	require.NoError(t, err)
	assert.Equal(t, "same-title", first.Slug)

	second, err := svc.Create(ctx, ArticleInput{Title: "Same Title"})
	require.NoError(t, err)
	assert.Equal(t, "same-title-1", second.Slug)
}

func TestCreateArticleExplicitSlugTaken(t *testing.T) {
	svc, _ := newArticleService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ArticleInput{Title: "First", Slug: "shared"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, ArticleInput{Title: "Second", Slug: "shared"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestUpdateTitleDoesNotChangeSlug(t *testing.T) {
	svc, _ := newArticleService(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, ArticleInput{Title: "Original Title"})
	require.NoError(t, err)
	require.Equal(t, "original-title", article.Slug)

	updated, err := svc.Update(ctx, article.ID, ArticleInput{Title: "Completely New Title"})
	require.NoError(t, err)
	assert.Equal(t, "original-title", updated.Slug, "slug derivation is creation-only")
	assert.Equal(t, "Completely New Title", updated.Title)
}

func TestUpdateExplicitSlugChange(t *testing.T) {
	svc, _ := newArticleService(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, ArticleInput{Title: "An Article"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, article.ID, ArticleInput{Title: "An Article", Slug: "custom-slug"})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", updated.Slug)
}

func TestPublishStampsPublishedAtOnce(t *testing.T) {
	svc, _ := newArticleService(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, ArticleInput{Title: "Draft Article"})
	require.NoError(t, err)
	require.True(t, article.PublishedAt.IsZero())

	published, err := svc.Update(ctx, article.ID, ArticleInput{Title: "Draft Article", Status: "published"})
	require.NoError(t, err)
	require.False(t, published.PublishedAt.IsZero())
	stamp := published.PublishedAt

	again, err := svc.Update(ctx, article.ID, ArticleInput{Title: "Draft Article", Status: "published"})
	require.NoError(t, err)
	assert.True(t, stamp.Equal(again.PublishedAt), "publication time is stamped once")
}

func TestDeleteRemovesArticleAndSearchEntry(t *testing.T) {
	svc, _ := newArticleService(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, ArticleInput{
		Title:   "Disposable Findings",
		Content: "A unique zanzibar keyword.",
		Status:  "published",
	})
	require.NoError(t, err)

	results, total, err := svc.SearchPublishedPage(ctx, "zanzibar", 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, results, 1)

	require.NoError(t, svc.Delete(ctx, article.ID))

	_, err = svc.GetByID(ctx, article.ID)
	assert.Error(t, err)

	_, total, err = svc.SearchPublishedPage(ctx, "zanzibar", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestCreateArticleUnknownCategory(t *testing.T) {
	svc, _ := newArticleService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ArticleInput{Title: "Misfiled", Category: "nonexistent"})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCreateArticleKnownCategory(t *testing.T) {
	svc, categories := newArticleService(t)
	ctx := context.Background()

	_, err := categories.Create(ctx, CategoryInput{Name: "Wellness"})
	require.NoError(t, err)

	article, err := svc.Create(ctx, ArticleInput{Title: "On Rest", Category: "wellness", Status: "published"})
	require.NoError(t, err)

	byCategory, err := svc.GetPublishedByCategory(ctx, "wellness", 10)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, article.Slug, byCategory[0].Slug)
}

func TestGetPublishedBySlugHidesDrafts(t *testing.T) {
	svc, _ := newArticleService(t)
	ctx := context.Background()

	article, err := svc.Create(ctx, ArticleInput{Title: "Hidden Draft"})
	require.NoError(t, err)

	_, err = svc.GetPublishedBySlug(ctx, article.Slug)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListReflectsWriteAfterInvalidation(t *testing.T) {
	svc, _ := newArticleService(t)
	ctx := context.Background()

	articles, err := svc.ListByStatus(ctx, "")
	require.NoError(t, err)
	require.Empty(t, articles)

	_, err = svc.Create(ctx, ArticleInput{Title: "Fresh"})
	require.NoError(t, err)

	articles, err = svc.ListByStatus(ctx, "")
	require.NoError(t, err)
	assert.Len(t, articles, 1, "cached list must reflect the confirmed write")
}

func TestRenderArticleBody(t *testing.T) {
	svc, _ := newArticleService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ArticleInput{
		Title:   "Formatted",
		Content: "Some **bold** text.",
		Status:  "published",
	})
	require.NoError(t, err)

	rendered, err := svc.GetPublishedBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Contains(t, string(rendered.Body), "<strong>bold</strong>")
	assert.NotEmpty(t, rendered.Excerpt)
	assert.Equal(t, "1 min read", rendered.ReadTime)
}
