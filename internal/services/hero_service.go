package services

import (
	"context"
	"errors"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/repository"

	"gorm.io/gorm"
)

// HeroInput is the draft state submitted by the hero editor.
type HeroInput struct {
	Title           string `json:"title" form:"title" binding:"required"`
	Subtitle        string `json:"subtitle" form:"subtitle"`
	BackgroundImage string `json:"background_image" form:"background_image"`
	ButtonText      string `json:"button_text" form:"button_text"`
	ButtonLink      string `json:"button_link" form:"button_link"`
	IsActive        bool   `json:"is_active" form:"is_active"`
}

type HeroService struct {
	repo  *repository.HeroRepository
	cache *cache.Cache
}

func NewHeroService(repo *repository.HeroRepository, c *cache.Cache) *HeroService {
	return &HeroService{repo: repo, cache: c}
}

// GetActive returns the active hero, or nil when none is configured.
func (s *HeroService) GetActive(ctx context.Context) (*models.HeroContent, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{"hero"}, func(ctx context.Context) (*models.HeroContent, error) {
		hero, err := s.repo.FindActive()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return hero, nil
	})
}

// Save updates the existing hero row, or creates it on first use. The hero
// is effectively a singleton.
func (s *HeroService) Save(ctx context.Context, input HeroInput) (*models.HeroContent, error) {
	hero, err := s.repo.FindFirst()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hero = &models.HeroContent{}
		err = nil
	}
	if err != nil {
		return nil, err
	}

	hero.Title = input.Title
	hero.Subtitle = input.Subtitle
	hero.BackgroundImage = input.BackgroundImage
	hero.ButtonText = input.ButtonText
	hero.ButtonLink = input.ButtonLink
	hero.IsActive = input.IsActive

	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		if hero.ID == 0 {
			return s.repo.Create(hero)
		}
		return s.repo.Update(hero)
	}, cache.Key{"hero"})
	if err != nil {
		return nil, err
	}
	return hero, nil
}
