package repository

import (
	"quill/internal/models"

	"gorm.io/gorm"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *ArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *ArticleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *ArticleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, id).Error
	return &article, err
}

func (r *ArticleRepository) FindBySlug(slug string, publishedOnly bool) (*models.Article, error) {
	var article models.Article
	query := r.db.Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("status = ?", "published")
	}
	err := query.First(&article).Error
	return &article, err
}

func (r *ArticleRepository) CheckSlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ArticleRepository) CheckSlugExistsForOther(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ArticleRepository) FindByStatus(status string) ([]models.Article, error) {
	var articles []models.Article
	query := r.db.Order("created_at desc")
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&articles).Error
	return articles, err
}

func (r *ArticleRepository) FindPublishedPage(page, pageSize int) ([]models.Article, error) {
	var articles []models.Article
	offset := (page - 1) * pageSize
	err := r.db.Where("status = ?", "published").
		Order("published_at desc").
		Offset(offset).Limit(pageSize).
		Find(&articles).Error
	return articles, err
}

func (r *ArticleRepository) CountPublished() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("status = ?", "published").Count(&count).Error
	return count, err
}

// FindPublishedByCategory matches Article.Category against a category slug.
// The relationship is a soft reference, compared case-insensitively.
func (r *ArticleRepository) FindPublishedByCategory(categorySlug string, limit int) ([]models.Article, error) {
	var articles []models.Article
	query := r.db.Where("status = ?", "published").
		Where("category LIKE ?", categorySlug).
		Order("published_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&articles).Error
	return articles, err
}

func (r *ArticleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}

func (r *ArticleRepository) UpdateFtsIndex(id uint, title, content string) error {
	query := `INSERT OR REPLACE INTO articles_fts (rowid, title, content) VALUES (?, ?, ?)`
	return r.db.Exec(query, id, title, content).Error
}

func (r *ArticleRepository) DeleteFtsIndex(id uint) error {
	query := `DELETE FROM articles_fts WHERE rowid = ?`
	return r.db.Exec(query, id).Error
}

func (r *ArticleRepository) SearchPublishedPage(ftsQuery string, page, pageSize int) ([]models.Article, error) {
	var articles []models.Article
	offset := (page - 1) * pageSize
	err := r.db.Table("articles").
		Select("articles.*, articles_fts.rank").
		Joins("JOIN articles_fts ON articles.id = articles_fts.rowid").
		Where("articles_fts MATCH ?", ftsQuery).
		Where("articles.status = ?", "published").
		Order("articles_fts.rank").
		Offset(offset).Limit(pageSize).
		Find(&articles).Error
	return articles, err
}

func (r *ArticleRepository) CountSearchPublished(ftsQuery string) (int64, error) {
	var count int64
	subQuery := r.db.Table("articles_fts").Select("rowid").Where("articles_fts MATCH ?", ftsQuery)
	err := r.db.Model(&models.Article{}).
		Where("id IN (?)", subQuery).
		Where("status = ?", "published").
		Count(&count).Error
	return count, err
}
