package services

import (
	"context"
	"fmt"
	"html/template"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/utils"

	"github.com/gosimple/slug"
)

// PageInput is the draft state submitted by the page editor.
type PageInput struct {
	Title           string `json:"title" form:"title" binding:"required"`
	Slug            string `json:"slug" form:"slug"`
	Content         string `json:"content" form:"content"`
	IsPublished     bool   `json:"is_published" form:"is_published"`
	MetaTitle       string `json:"meta_title" form:"meta_title" binding:"max=60"`
	MetaDescription string `json:"meta_description" form:"meta_description" binding:"max=160"`
	OGImage         string `json:"og_image" form:"og_image"`
}

type PageService struct {
	repo  *repository.PageRepository
	cache *cache.Cache
}

func NewPageService(repo *repository.PageRepository, c *cache.Cache) *PageService {
	return &PageService{repo: repo, cache: c}
}

func (s *PageService) Create(ctx context.Context, input PageInput) (*models.Page, error) {
	slugStr := input.Slug
	if slugStr == "" {
		var err error
		slugStr, err = s.generateUniqueSlug(input.Title)
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

	page := &models.Page{
		Title:           input.Title,
		Slug:            slugStr,
		Content:         input.Content,
		ContentHTML:     string(htmlContent),
		IsPublished:     input.IsPublished,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		OGImage:         input.OGImage,
	}

	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Create(page)
	}, cache.Key{"pages"}, cache.Key{"page"})
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (s *PageService) Update(ctx context.Context, id uint, input PageInput) (*models.Page, error) {
	page, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	// Creation-only slug derivation; manual edits only from here on.
	if input.Slug != "" && input.Slug != page.Slug {
		exists, err := s.repo.CheckSlugExistsForOther(input.Slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrSlugTaken, input.Slug)
		}
		page.Slug = input.Slug
	}

	htmlContent, err := utils.RenderMarkdown(input.Content)
	if err != nil {
		return nil, err
	}

	page.Title = input.Title
	page.Content = input.Content
	page.ContentHTML = string(htmlContent)
	page.IsPublished = input.IsPublished
	page.MetaTitle = input.MetaTitle
	page.MetaDescription = input.MetaDescription
	page.OGImage = input.OGImage

	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Update(page)
	}, cache.Key{"pages"}, cache.Key{"page"})
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (s *PageService) Delete(ctx context.Context, id uint) error {
	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Delete(id)
	}, cache.Key{"pages"}, cache.Key{"page"})
}

func (s *PageService) GetByID(ctx context.Context, id uint) (*models.Page, error) {
	return s.repo.FindByID(id)
}

func (s *PageService) GetPublishedBySlug(ctx context.Context, slugStr string) (*models.RenderedPage, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{"page", slugStr}, func(ctx context.Context) (*models.RenderedPage, error) {
		page, err := s.repo.FindBySlug(slugStr, true)
		if err != nil {
			return nil, err
		}
		return renderPage(page), nil
	})
}

func (s *PageService) List(ctx context.Context) ([]models.Page, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{"pages"}, func(ctx context.Context) ([]models.Page, error) {
		return s.repo.FindAll()
	})
}

func (s *PageService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count()
}

func (s *PageService) generateUniqueSlug(title string) (string, error) {
	baseSlug := slug.Make(title)
	if baseSlug == "" {
		baseSlug = "untitled"
	}
	finalSlug := baseSlug
	counter := 1
	for {
		exists, err := s.repo.CheckSlugExists(finalSlug)
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

func renderPage(page *models.Page) *models.RenderedPage {
	return &models.RenderedPage{
		ID:              page.ID,
		CreatedAt:       page.CreatedAt,
		UpdatedAt:       page.UpdatedAt,
		Title:           page.Title,
		Slug:            page.Slug,
		Body:            template.HTML(page.ContentHTML),
		IsPublished:     page.IsPublished,
		MetaTitle:       page.MetaTitle,
		MetaDescription: page.MetaDescription,
		OGImage:         page.OGImage,
	}
}
