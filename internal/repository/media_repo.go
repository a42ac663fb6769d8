package repository

import (
	"quill/internal/models"

	"gorm.io/gorm"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(item *models.MediaItem) error {
	return r.db.Create(item).Error
}

func (r *MediaRepository) Update(item *models.MediaItem) error {
	return r.db.Save(item).Error
}

func (r *MediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.MediaItem{}, id).Error
}

func (r *MediaRepository) FindByID(id uint) (*models.MediaItem, error) {
	var item models.MediaItem
	err := r.db.First(&item, id).Error
	return &item, err
}

func (r *MediaRepository) FindAll() ([]models.MediaItem, error) {
	var items []models.MediaItem
	err := r.db.Order("created_at desc").Find(&items).Error
	return items, err
}

func (r *MediaRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.MediaItem{}).Count(&count).Error
	return count, err
}
