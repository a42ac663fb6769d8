package models

import (
	"html/template"
	"time"

	"gorm.io/gorm"
)

type Page struct {
	gorm.Model
	Title           string `gorm:"not null" json:"title" form:"title" binding:"required"`
	Slug            string `gorm:"uniqueIndex;not null" json:"slug"`
	Content         string `gorm:"type:text" json:"content" form:"content"`
	ContentHTML     string `gorm:"type:text" json:"-"`
	IsPublished     bool   `gorm:"default:false" json:"is_published" form:"is_published"`
	MetaTitle       string `gorm:"size:60" json:"meta_title" form:"meta_title" binding:"max=60"`
	MetaDescription string `gorm:"size:160" json:"meta_description" form:"meta_description" binding:"max=160"`
	OGImage         string `json:"og_image" form:"og_image"`
}

// RenderedPage is a view model for displaying a page.
type RenderedPage struct {
	ID              uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Title           string
	Slug            string
	Body            template.HTML
	IsPublished     bool
	MetaTitle       string
	MetaDescription string
	OGImage         string
}
