package utils

import (
	"quill/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func InitDatabase(dbPath string) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = "quill.db"
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Article{},
		&models.Page{},
		&models.Category{},
		&models.MediaItem{},
		&models.HeroContent{},
		&models.PageSection{},
		&models.SiteSection{},
		&models.Setting{},
		&models.User{},
	)
	if err != nil {
		return nil, err
	}

	// FTS index for article search. A plain FTS table, kept in sync by the
	// article service rather than by triggers.
	ftsTableSQL := `
	CREATE VIRTUAL TABLE IF NOT EXISTS articles_fts USING fts5(
		title,
		content,
		tokenize = 'unicode61'
	);`
	if err := db.Exec(ftsTableSQL).Error; err != nil {
		return nil, err
	}

	if err := seedSettings(db); err != nil {
		return nil, err
	}
	if err := seedSections(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedSettings populates the database with default settings if they don't exist.
func seedSettings(db *gorm.DB) error {
	defaultSettings := map[string]string{
		"site_title":       "Quill",
		"site_description": "An editorial site powered by Quill",
		"site_logo":        "",
		"seo":              `{"site_title":"","site_description":"","default_og_image":"","twitter_handle":""}`,
	}

	for key, value := range defaultSettings {
		setting := models.Setting{Key: key}
		result := db.FirstOrCreate(&setting, models.Setting{Key: key})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			// Only set the value if the record was just created
			setting.Value = value
			db.Save(&setting)
		}
	}

	return nil
}

// seedSections creates the editable section rows the admin console manages.
// Content stays empty until an editor fills it in.
func seedSections(db *gorm.DB) error {
	pageSections := []models.PageSection{
		{PageKey: "about", PageName: "About", IsActive: true},
		{PageKey: "contact", PageName: "Contact", IsActive: true},
	}
	for _, s := range pageSections {
		if err := db.Where(models.PageSection{PageKey: s.PageKey}).FirstOrCreate(&s).Error; err != nil {
			return err
		}
	}

	siteSections := []models.SiteSection{
		{SectionKey: "expertise_cards", SectionName: "Expertise cards", IsActive: true},
	}
	for _, s := range siteSections {
		if err := db.Where(models.SiteSection{SectionKey: s.SectionKey}).FirstOrCreate(&s).Error; err != nil {
			return err
		}
	}

	return nil
}
