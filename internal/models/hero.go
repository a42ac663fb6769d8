package models

import "gorm.io/gorm"

// HeroContent drives the banner on the home page. Only one row with
// IsActive set is ever read.
type HeroContent struct {
	gorm.Model
	Title           string `gorm:"not null" json:"title" form:"title" binding:"required"`
	Subtitle        string `json:"subtitle" form:"subtitle"`
	BackgroundImage string `json:"background_image" form:"background_image"`
	ButtonText      string `json:"button_text" form:"button_text"`
	ButtonLink      string `json:"button_link" form:"button_link"`
	IsActive        bool   `gorm:"default:true" json:"is_active" form:"is_active"`
}
