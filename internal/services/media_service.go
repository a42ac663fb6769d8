package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/storage"

	"github.com/google/uuid"
)

type MediaService struct {
	repo   *repository.MediaRepository
	store  storage.ObjectStore
	cache  *cache.Cache
	logger *slog.Logger
}

func NewMediaService(repo *repository.MediaRepository, store storage.ObjectStore, c *cache.Cache, logger *slog.Logger) *MediaService {
	return &MediaService{repo: repo, store: store, cache: c, logger: logger}
}

// Upload pushes the file bytes to object storage, then inserts the metadata
// record. If the record insert fails the freshly uploaded object is removed
// on a best-effort basis.
func (s *MediaService) Upload(ctx context.Context, name, contentType string, size int64, body io.Reader, altText string) (*models.MediaItem, error) {
	key := fmt.Sprintf("uploads/%s%s", uuid.New(), path.Ext(name))

	url, err := s.store.Put(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("uploading object: %w", err)
	}

	item := &models.MediaItem{
		Name:     name,
		FilePath: key,
		FileURL:  url,
		FileType: contentType,
		FileSize: size,
		AltText:  altText,
	}
	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Create(item)
	}, cache.Key{"media"})
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.logger.Error("failed to clean up orphaned object", "key", key, "error", delErr)
		}
		return nil, err
	}
	return item, nil
}

// Delete removes the blob first and only then the record. If the blob
// removal fails the record stays, so a stored row never points at a URL we
// cannot account for.
func (s *MediaService) Delete(ctx context.Context, id uint) error {
	item, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, item.FilePath); err != nil {
		return fmt.Errorf("removing object %s: %w", item.FilePath, err)
	}

	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Delete(id)
	}, cache.Key{"media"})
}

func (s *MediaService) UpdateAltText(ctx context.Context, id uint, altText string) (*models.MediaItem, error) {
	item, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	item.AltText = altText

	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.repo.Update(item)
	}, cache.Key{"media"})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MediaService) List(ctx context.Context) ([]models.MediaItem, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{"media"}, func(ctx context.Context) ([]models.MediaItem, error) {
		return s.repo.FindAll()
	})
}

func (s *MediaService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count()
}
