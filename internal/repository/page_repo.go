package repository

import (
	"quill/internal/models"

	"gorm.io/gorm"
)

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) Create(page *models.Page) error {
	return r.db.Create(page).Error
}

func (r *PageRepository) Update(page *models.Page) error {
	return r.db.Save(page).Error
}

func (r *PageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Page{}, id).Error
}

func (r *PageRepository) FindByID(id uint) (*models.Page, error) {
	var page models.Page
	err := r.db.First(&page, id).Error
	return &page, err
}

func (r *PageRepository) FindBySlug(slug string, publishedOnly bool) (*models.Page, error) {
	var page models.Page
	query := r.db.Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.First(&page).Error
	return &page, err
}

func (r *PageRepository) FindAll() ([]models.Page, error) {
	var pages []models.Page
	err := r.db.Order("title asc").Find(&pages).Error
	return pages, err
}

func (r *PageRepository) CheckSlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Page{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PageRepository) CheckSlugExistsForOther(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Page{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Page{}).Count(&count).Error
	return count, err
}
