package repository

import (
	"quill/internal/models"

	"gorm.io/gorm"
)

type HeroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *HeroRepository {
	return &HeroRepository{db: db}
}

// FindActive returns the single active hero row.
func (r *HeroRepository) FindActive() (*models.HeroContent, error) {
	var hero models.HeroContent
	err := r.db.Where("is_active = ?", true).First(&hero).Error
	return &hero, err
}

// FindFirst returns the hero row regardless of its active flag.
func (r *HeroRepository) FindFirst() (*models.HeroContent, error) {
	var hero models.HeroContent
	err := r.db.Order("id asc").First(&hero).Error
	return &hero, err
}

func (r *HeroRepository) FindByID(id uint) (*models.HeroContent, error) {
	var hero models.HeroContent
	err := r.db.First(&hero, id).Error
	return &hero, err
}

func (r *HeroRepository) Create(hero *models.HeroContent) error {
	return r.db.Create(hero).Error
}

func (r *HeroRepository) Update(hero *models.HeroContent) error {
	return r.db.Save(hero).Error
}
