package services

import (
	"context"
	"fmt"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/repository"

	"github.com/gosimple/slug"
)

// CategoryInput is the draft state submitted by the categories manager.
type CategoryInput struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Slug        string `json:"slug" form:"slug"`
	Description string `json:"description" form:"description"`
}

type CategoryService struct {
	repo  *repository.CategoryRepository
	cache *cache.Cache
}

func NewCategoryService(repo *repository.CategoryRepository, c *cache.Cache) *CategoryService {
	return &CategoryService{repo: repo, cache: c}
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	slugStr := input.Slug
	if slugStr == "" {
		slugStr = slug.Make(input.Name)
	}
	exists, err := s.repo.CheckSlugExists(slugStr)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrSlugTaken, slugStr)
	}

	category := &models.Category{
		Name:        input.Name,
		Slug:        slugStr,
		Description: input.Description,
	}
	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Create(category)
	}, cache.Key{"categories"})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Slug != "" && input.Slug != category.Slug {
		exists, err := s.repo.CheckSlugExistsForOther(input.Slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrSlugTaken, input.Slug)
		}
		category.Slug = input.Slug
	}

	category.Name = input.Name
	category.Description = input.Description

	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Update(category)
	}, cache.Key{"categories"})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Delete(id)
	}, cache.Key{"categories"})
}

func (s *CategoryService) GetBySlug(ctx context.Context, slugStr string) (*models.Category, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{"categories", slugStr}, func(ctx context.Context) (*models.Category, error) {
		return s.repo.FindBySlug(slugStr)
	})
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{"categories"}, func(ctx context.Context) ([]models.Category, error) {
		return s.repo.FindAll()
	})
}

func (s *CategoryService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count()
}
