package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name" form:"name" binding:"required"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description" form:"description"`
}
