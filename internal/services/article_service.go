package services

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strconv"
	"time"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/utils"

	"github.com/gosimple/slug"
)

// ArticleInput is the draft state submitted by the article editor or the API.
type ArticleInput struct {
	Title           string `json:"title" form:"title" binding:"required"`
	Slug            string `json:"slug" form:"slug"`
	Excerpt         string `json:"excerpt" form:"excerpt"`
	Content         string `json:"content" form:"content"`
	FeaturedImage   string `json:"featured_image" form:"featured_image"`
	Category        string `json:"category" form:"category"`
	AuthorName      string `json:"author_name" form:"author_name"`
	Status          string `json:"status" form:"status"`
	ReadTime        string `json:"read_time" form:"read_time"`
	MetaTitle       string `json:"meta_title" form:"meta_title" binding:"max=60"`
	MetaDescription string `json:"meta_description" form:"meta_description" binding:"max=160"`
	OGImage         string `json:"og_image" form:"og_image"`
}

type ArticleService struct {
	repo         *repository.ArticleRepository
	categoryRepo *repository.CategoryRepository
	cache        *cache.Cache
	logger       *slog.Logger
}

func NewArticleService(repo *repository.ArticleRepository, categoryRepo *repository.CategoryRepository, c *cache.Cache, logger *slog.Logger) *ArticleService {
	return &ArticleService{
		repo:         repo,
		categoryRepo: categoryRepo,
		cache:        c,
		logger:       logger,
	}
}

func (s *ArticleService) Create(ctx context.Context, input ArticleInput) (*models.Article, error) {
	status := input.Status
	if status == "" {
		status = "draft"
	}
	if err := validStatus(status); err != nil {
		return nil, err
	}
	if err := s.checkCategory(input.Category); err != nil {
		return nil, err
	}

	// Slug auto-derivation happens on creation only. An explicitly chosen
	// slug must be free; a derived one gets a counter suffix when taken.
	slugStr := input.Slug
	if slugStr == "" {
		var err error
		slugStr, err = s.generateUniqueSlug(input.Title, 0)
		if err != nil {
			return nil, err
		}
	} else {
		exists, err := s.repo.CheckSlugExists(slugStr)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrSlugTaken, slugStr)
		}
	}

	htmlContent, err := utils.RenderMarkdown(input.Content)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:           input.Title,
		Slug:            slugStr,
		Excerpt:         input.Excerpt,
		Content:         input.Content,
		ContentHTML:     string(htmlContent),
		FeaturedImage:   input.FeaturedImage,
		Category:        input.Category,
		AuthorName:      input.AuthorName,
		Status:          status,
		ReadTime:        input.ReadTime,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		OGImage:         input.OGImage,
	}
	if article.Excerpt == "" {
		article.Excerpt = utils.GenerateExcerpt(input.Content, 150)
	}
	if article.ReadTime == "" {
		article.ReadTime = utils.EstimateReadTime(input.Content)
	}
	if status == "published" {
		article.PublishedAt = time.Now()
	}

	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Create(article)
	}, cache.Key{"articles"}, cache.Key{"article"})
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateFtsIndex(article.ID, article.Title, article.Content); err != nil {
		s.logger.Error("failed to update article search index", "id", article.ID, "error", err)
	}

	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, id uint, input ArticleInput) (*models.Article, error) {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = article.Status
	}
	if err := validStatus(status); err != nil {
		return nil, err
	}
	if err := s.checkCategory(input.Category); err != nil {
		return nil, err
	}

	// Slugs are never re-derived from the title once a record exists; only
	// an explicit manual edit can change them.
	if input.Slug != "" && input.Slug != article.Slug {
		exists, err := s.repo.CheckSlugExistsForOther(input.Slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrSlugTaken, input.Slug)
		}
		article.Slug = input.Slug
	}

	htmlContent, err := utils.RenderMarkdown(input.Content)
	if err != nil {
		return nil, err
	}

	// A first transition to published stamps the publication time once.
	if status == "published" && article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now()
	}

	article.Title = input.Title
	article.Excerpt = input.Excerpt
	article.Content = input.Content
	article.ContentHTML = string(htmlContent)
	article.FeaturedImage = input.FeaturedImage
	article.Category = input.Category
	article.AuthorName = input.AuthorName
	article.Status = status
	article.ReadTime = input.ReadTime
	article.MetaTitle = input.MetaTitle
	article.MetaDescription = input.MetaDescription
	article.OGImage = input.OGImage
	if article.Excerpt == "" {
		article.Excerpt = utils.GenerateExcerpt(input.Content, 150)
	}
	if article.ReadTime == "" {
		article.ReadTime = utils.EstimateReadTime(input.Content)
	}

	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Update(article)
	}, cache.Key{"articles"}, cache.Key{"article"})
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateFtsIndex(article.ID, article.Title, article.Content); err != nil {
		s.logger.Error("failed to update article search index", "id", article.ID, "error", err)
	}

	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, id uint) error {
	// Drop the record before its index entry so a failed delete leaves the
	// article searchable.
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Delete(id)
	}, cache.Key{"articles"}, cache.Key{"article"})
	if err != nil {
		return err
	}
	if err := s.repo.DeleteFtsIndex(id); err != nil {
		s.logger.Error("failed to remove article from search index", "id", id, "error", err)
	}
	return nil
}

func (s *ArticleService) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	return s.repo.FindByID(id)
}

// GetPublishedBySlug serves the public article view from the cache.
func (s *ArticleService) GetPublishedBySlug(ctx context.Context, slugStr string) (*models.RenderedArticle, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{"article", slugStr}, func(ctx context.Context) (*models.RenderedArticle, error) {
		article, err := s.repo.FindBySlug(slugStr, true)
		if err != nil {
			return nil, err
		}
		return renderArticle(article), nil
	})
}

func (s *ArticleService) ListByStatus(ctx context.Context, status string) ([]models.Article, error) {
	key := cache.Key{"articles", "admin", status}
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]models.Article, error) {
		return s.repo.FindByStatus(status)
	})
}

func (s *ArticleService) GetPublishedPage(ctx context.Context, page, pageSize int) ([]models.RenderedArticle, int, error) {
	type result struct {
		Articles []models.RenderedArticle
		Total    int
	}
	key := cache.Key{"articles", "published", strconv.Itoa(page), strconv.Itoa(pageSize)}
	res, err := cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (result, error) {
		articles, err := s.repo.FindPublishedPage(page, pageSize)
		if err != nil {
			return result{}, err
		}
		total, err := s.repo.CountPublished()
		if err != nil {
			return result{}, err
		}
		return result{Articles: renderArticles(articles), Total: int(total)}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return res.Articles, res.Total, nil
}

func (s *ArticleService) GetPublishedByCategory(ctx context.Context, categorySlug string, limit int) ([]models.RenderedArticle, error) {
	key := cache.Key{"articles", "category", categorySlug}
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]models.RenderedArticle, error) {
		articles, err := s.repo.FindPublishedByCategory(categorySlug, limit)
		if err != nil {
			return nil, err
		}
		return renderArticles(articles), nil
	})
}

// SearchPublishedPage queries the FTS index. Results are not cached: the key
// space is unbounded and search freshness matters more than latency here.
func (s *ArticleService) SearchPublishedPage(ctx context.Context, query string, page, pageSize int) ([]models.RenderedArticle, int, error) {
	articles, err := s.repo.SearchPublishedPage(query, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountSearchPublished(query)
	if err != nil {
		return nil, 0, err
	}
	return renderArticles(articles), int(total), nil
}

func (s *ArticleService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count()
}

func (s *ArticleService) checkCategory(categorySlug string) error {
	if categorySlug == "" {
		return nil
	}
	exists, err := s.categoryRepo.CheckSlugExists(categorySlug)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, categorySlug)
	}
	return nil
}

// generateUniqueSlug derives a slug from the title and appends a counter
// until it is free.
func (s *ArticleService) generateUniqueSlug(title string, articleID uint) (string, error) {
	baseSlug := slug.Make(title)
	if baseSlug == "" {
		baseSlug = "untitled"
	}
	finalSlug := baseSlug
	counter := 1
	for {
		var exists bool
		var err error
		if articleID == 0 {
			exists, err = s.repo.CheckSlugExists(finalSlug)
		} else {
			exists, err = s.repo.CheckSlugExistsForOther(finalSlug, articleID)
		}
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
		finalSlug = fmt.Sprintf("%s-%d", baseSlug, counter)
		counter++
	}
	return finalSlug, nil
}

func validStatus(status string) error {
	switch status {
	case "draft", "published", "archived":
		return nil
	}
	return fmt.Errorf("invalid status %q", status)
}

func renderArticle(article *models.Article) *models.RenderedArticle {
	return &models.RenderedArticle{
		ID:              article.ID,
		CreatedAt:       article.CreatedAt,
		UpdatedAt:       article.UpdatedAt,
		PublishedAt:     article.PublishedAt,
		Title:           article.Title,
		Slug:            article.Slug,
		Excerpt:         article.Excerpt,
		Body:            template.HTML(article.ContentHTML),
		FeaturedImage:   article.FeaturedImage,
		Category:        article.Category,
		AuthorName:      article.AuthorName,
		Status:          article.Status,
		ReadTime:        article.ReadTime,
		MetaTitle:       article.MetaTitle,
		MetaDescription: article.MetaDescription,
		OGImage:         article.OGImage,
	}
}

func renderArticles(articles []models.Article) []models.RenderedArticle {
	rendered := make([]models.RenderedArticle, len(articles))
	for i := range articles {
		rendered[i] = *renderArticle(&articles[i])
	}
	return rendered
}
