package models

import "gorm.io/gorm"

// Setting stores a site-level key/value pair. Structured settings (e.g. the
// SEO defaults) keep a JSON document in Value.
type Setting struct {
	gorm.Model
	Key   string `gorm:"type:varchar(255);uniqueIndex"`
	Value string `gorm:"type:text"`
}

// SEOSettings are the site-wide defaults stored under the "seo" setting key.
type SEOSettings struct {
	SiteTitle       string `json:"site_title" form:"site_title" binding:"max=60"`
	SiteDescription string `json:"site_description" form:"site_description" binding:"max=160"`
	DefaultOGImage  string `json:"default_og_image" form:"default_og_image"`
	TwitterHandle   string `json:"twitter_handle" form:"twitter_handle"`
}
