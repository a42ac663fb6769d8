package repository

import (
	"quill/internal/models"

	"gorm.io/gorm"
)

type SectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) FindPageSectionByKey(pageKey string, activeOnly bool) (*models.PageSection, error) {
	var section models.PageSection
	query := r.db.Where("page_key = ?", pageKey)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.First(&section).Error
	return &section, err
}

func (r *SectionRepository) FindAllPageSections() ([]models.PageSection, error) {
	var sections []models.PageSection
	err := r.db.Order("page_name asc").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) FindPageSectionByID(id uint) (*models.PageSection, error) {
	var section models.PageSection
	err := r.db.First(&section, id).Error
	return &section, err
}

func (r *SectionRepository) UpdatePageSection(section *models.PageSection) error {
	return r.db.Save(section).Error
}

func (r *SectionRepository) FindSiteSectionByKey(sectionKey string) (*models.SiteSection, error) {
	var section models.SiteSection
	err := r.db.Where("section_key = ?", sectionKey).First(&section).Error
	return &section, err
}

func (r *SectionRepository) FindSiteSectionsByKeys(keys []string) ([]models.SiteSection, error) {
	var sections []models.SiteSection
	err := r.db.Where("section_key IN ?", keys).Order("section_key asc").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) FindAllSiteSections() ([]models.SiteSection, error) {
	var sections []models.SiteSection
	err := r.db.Order("section_name asc").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) FindSiteSectionByID(id uint) (*models.SiteSection, error) {
	var section models.SiteSection
	err := r.db.First(&section, id).Error
	return &section, err
}

func (r *SectionRepository) UpdateSiteSection(section *models.SiteSection) error {
	return r.db.Save(section).Error
}
