package services

import (
	"context"
	"encoding/json"
	"fmt"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/repository"
)

type SectionService struct {
	repo  *repository.SectionRepository
	cache *cache.Cache
}

func NewSectionService(repo *repository.SectionRepository, c *cache.Cache) *SectionService {
	return &SectionService{repo: repo, cache: c}
}

// GetPageSection returns the active section block for a public page.
func (s *SectionService) GetPageSection(ctx context.Context, pageKey string) (*models.PageSection, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{"page-section", pageKey}, func(ctx context.Context) (*models.PageSection, error) {
		return s.repo.FindPageSectionByKey(pageKey, true)
	})
}

func (s *SectionService) ListPageSections(ctx context.Context) ([]models.PageSection, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{"page-sections"}, func(ctx context.Context) ([]models.PageSection, error) {
		return s.repo.FindAllPageSections()
	})
}

// UpdatePageSectionContent replaces a page section's free-form content. The
// raw JSON must parse to an object; its shape is interpreted per page key at
// render time.
func (s *SectionService) UpdatePageSectionContent(ctx context.Context, id uint, title, subtitle string, rawContent string, isActive bool) (*models.PageSection, error) {
	section, err := s.repo.FindPageSectionByID(id)
	if err != nil {
		return nil, err
	}

	var content models.JSONMap
	if err := json.Unmarshal([]byte(rawContent), &content); err != nil {
		return nil, fmt.Errorf("content is not a valid JSON object: %w", err)
	}

	section.Title = title
	section.Subtitle = subtitle
	section.Content = content
	section.IsActive = isActive

	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.UpdatePageSection(section)
	}, cache.Key{"page-sections"}, cache.Key{"page-section"})
	if err != nil {
		return nil, err
	}
	return section, nil
}

// GetSiteSection returns one site section with its content decoded into the
// typed variant for its key.
func (s *SectionService) GetSiteSection(ctx context.Context, sectionKey string) (*models.SiteSection, models.SectionContent, error) {
	section, err := cache.Fetch(ctx, s.cache, cache.Key{"site-section", sectionKey}, func(ctx context.Context) (*models.SiteSection, error) {
		return s.repo.FindSiteSectionByKey(sectionKey)
	})
	if err != nil {
		return nil, nil, err
	}
	return section, models.DecodeSectionContent(section.SectionKey, section.Content), nil
}

func (s *SectionService) ListSiteSections(ctx context.Context) ([]models.SiteSection, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{"site-sections"}, func(ctx context.Context) ([]models.SiteSection, error) {
		return s.repo.FindAllSiteSections()
	})
}

func (s *SectionService) UpdateSiteSectionContent(ctx context.Context, id uint, rawContent string, isActive bool) (*models.SiteSection, error) {
	section, err := s.repo.FindSiteSectionByID(id)
	if err != nil {
		return nil, err
	}

	var content models.JSONMap
	if err := json.Unmarshal([]byte(rawContent), &content); err != nil {
		return nil, fmt.Errorf("content is not a valid JSON object: %w", err)
	}

	section.Content = content
	section.IsActive = isActive

	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.UpdateSiteSection(section)
	}, cache.Key{"site-sections"}, cache.Key{"site-section"})
	if err != nil {
		return nil, err
	}
	return section, nil
}
