package models

import "gorm.io/gorm"

// MediaItem is the metadata record for an uploaded file. The bytes live in
// object storage under FilePath; FileURL is the public address.
type MediaItem struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	FilePath string `gorm:"uniqueIndex;not null" json:"file_path"`
	FileURL  string `gorm:"not null" json:"file_url"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
	AltText  string `json:"alt_text" form:"alt_text"`
}
