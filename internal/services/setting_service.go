package services

import (
	"encoding/json"
	"log/slog"
	"sync"

	"quill/internal/models"
	"quill/internal/repository"
)

// SettingService keeps all site settings in an in-process map, reloaded
// whenever a setting is written.
type SettingService struct {
	repo         *repository.SettingRepository
	logger       *slog.Logger
	settings     map[string]string
	settingsLock sync.RWMutex
}

func NewSettingService(repo *repository.SettingRepository, logger *slog.Logger) *SettingService {
	s := &SettingService{
		repo:     repo,
		logger:   logger,
		settings: make(map[string]string),
	}
	s.loadSettings()
	return s
}

func (s *SettingService) loadSettings() {
	s.settingsLock.Lock()
	defer s.settingsLock.Unlock()

	settings, err := s.repo.GetAllSettings()
	if err != nil {
		s.logger.Error("failed to load settings", "error", err)
		return
	}
	s.settings = settings
}

// GetAllSettings retrieves all settings as a map from the cache.
func (s *SettingService) GetAllSettings() (map[string]string, error) {
	s.settingsLock.RLock()
	defer s.settingsLock.RUnlock()

	// Return a copy to prevent modification of the cache from outside.
	settingsCopy := make(map[string]string)
	for key, value := range s.settings {
		settingsCopy[key] = value
	}
	return settingsCopy, nil
}

// UpdateSettings updates multiple settings at once and refreshes the cache.
func (s *SettingService) UpdateSettings(settings map[string]string) error {
	for key, value := range settings {
		if err := s.repo.UpdateSetting(key, value); err != nil {
			return err
		}
	}
	// Reload settings into cache after update
	s.loadSettings()
	return nil
}

// GetSetting retrieves a single setting value by its key from the cache.
func (s *SettingService) GetSetting(key string) (string, error) {
	s.settingsLock.RLock()
	defer s.settingsLock.RUnlock()
	return s.settings[key], nil
}

// GetSEO decodes the site-wide SEO defaults stored under the "seo" key.
// Missing or malformed values yield zero defaults rather than an error.
func (s *SettingService) GetSEO() models.SEOSettings {
	raw, _ := s.GetSetting("seo")
	var seo models.SEOSettings
	if raw == "" {
		return seo
	}
	if err := json.Unmarshal([]byte(raw), &seo); err != nil {
		s.logger.Warn("malformed seo settings, using defaults", "error", err)
	}
	return seo
}

// UpdateSEO stores the site-wide SEO defaults under the "seo" key.
func (s *SettingService) UpdateSEO(seo models.SEOSettings) error {
	raw, err := json.Marshal(seo)
	if err != nil {
		return err
	}
	return s.UpdateSettings(map[string]string{"seo": string(raw)})
}
