package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// JSONMap stores a free-form JSON object in a text column.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// String renders the map as indented JSON for the admin editor.
func (m JSONMap) String() string {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func (m *JSONMap) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*m = JSONMap{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", src)
	}
	if len(data) == 0 {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// PageSection is an admin-editable content block bound to one public page.
type PageSection struct {
	gorm.Model
	PageKey  string  `gorm:"uniqueIndex;not null" json:"page_key" form:"page_key"`
	PageName string  `gorm:"not null" json:"page_name" form:"page_name"`
	Title    string  `json:"title" form:"title"`
	Subtitle string  `json:"subtitle" form:"subtitle"`
	Content  JSONMap `gorm:"type:text" json:"content"`
	IsActive bool    `gorm:"default:true" json:"is_active" form:"is_active"`
}

// SiteSection is an admin-editable content block bound to a logical site
// location shared across pages, e.g. the card grids on the home page.
type SiteSection struct {
	gorm.Model
	SectionKey  string  `gorm:"uniqueIndex;not null" json:"section_key" form:"section_key"`
	SectionName string  `gorm:"not null" json:"section_name" form:"section_name"`
	Content     JSONMap `gorm:"type:text" json:"content"`
	IsActive    bool    `gorm:"default:true" json:"is_active" form:"is_active"`
}

// SectionCard is one tile in a card-grid section.
type SectionCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

// SectionContent is the decoded form of a section's JSON content. Known
// section keys decode to a typed variant; everything else falls back to
// GenericSection and is rendered generically.
type SectionContent interface {
	sectionContent()
}

// CardsSection is the typed variant for card-grid sections.
type CardsSection struct {
	Cards []SectionCard
}

func (CardsSection) sectionContent() {}

// GenericSection carries content for section keys without a known schema.
type GenericSection JSONMap

func (GenericSection) sectionContent() {}

// DecodeSectionContent interprets a section's free-form content based on its
// key. Card grids use keys of the form "<name>_cards".
func DecodeSectionContent(key string, content JSONMap) SectionContent {
	if strings.HasSuffix(key, "_cards") {
		raw, err := json.Marshal(content)
		if err != nil {
			return GenericSection(content)
		}
		var cards CardsSection
		if err := json.Unmarshal(raw, &struct {
			Cards *[]SectionCard `json:"cards"`
		}{Cards: &cards.Cards}); err != nil {
			return GenericSection(content)
		}
		return cards
	}
	return GenericSection(content)
}
