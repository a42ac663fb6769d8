package models

import (
	"html/template"
	"time"

	"gorm.io/gorm"
)

type Article struct {
	gorm.Model
	Title           string    `gorm:"not null" json:"title" form:"title" binding:"required"`
	Slug            string    `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt         string    `json:"excerpt" form:"excerpt"`
	Content         string    `gorm:"type:text" json:"content" form:"content"`
	ContentHTML     string    `gorm:"type:text" json:"-"`
	FeaturedImage   string    `json:"featured_image" form:"featured_image"`
	Category        string    `gorm:"index" json:"category" form:"category"`
	AuthorName      string    `json:"author_name" form:"author_name"`
	Status          string    `gorm:"index;default:draft" json:"status" form:"status"`
	ReadTime        string    `json:"read_time" form:"read_time"`
	MetaTitle       string    `gorm:"size:60" json:"meta_title" form:"meta_title" binding:"max=60"`
	MetaDescription string    `gorm:"size:160" json:"meta_description" form:"meta_description" binding:"max=160"`
	OGImage         string    `json:"og_image" form:"og_image"`
	PublishedAt     time.Time `json:"published_at"`
}

// RenderedArticle is a view model for displaying an article with its
// rendered HTML body.
type RenderedArticle struct {
	ID              uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PublishedAt     time.Time
	Title           string
	Slug            string
	Excerpt         string
	Body            template.HTML // pre-rendered, must not be re-escaped
	FeaturedImage   string
	Category        string
	AuthorName      string
	Status          string
	ReadTime        string
	MetaTitle       string
	MetaDescription string
	OGImage         string
}
