package services

import (
	"log/slog"
	"testing"

	"quill/internal/models"
	"quill/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingService(t *testing.T) *SettingService {
	t.Helper()
	db := newTestDB(t)
	return NewSettingService(repository.NewSettingRepository(db), slog.Default())
}

func TestSettingDefaultsSeeded(t *testing.T) {
	svc := newSettingService(t)

	title, err := svc.GetSetting("site_title")
	require.NoError(t, err)
	assert.Equal(t, "Quill", title)
}

func TestUpdateSettingsRefreshesCache(t *testing.T) {
	svc := newSettingService(t)

	require.NoError(t, svc.UpdateSettings(map[string]string{"site_title": "The Gazette"}))

	title, err := svc.GetSetting("site_title")
	require.NoError(t, err)
	assert.Equal(t, "The Gazette", title)

	all, err := svc.GetAllSettings()
	require.NoError(t, err)
	assert.Equal(t, "The Gazette", all["site_title"])
}

func TestSEORoundTrip(t *testing.T) {
	svc := newSettingService(t)

	require.NoError(t, svc.UpdateSEO(models.SEOSettings{
		SiteTitle:       "The Gazette",
		SiteDescription: "Slow journalism, fast pages.",
		TwitterHandle:   "@gazette",
	}))

	seo := svc.GetSEO()
	assert.Equal(t, "The Gazette", seo.SiteTitle)
	assert.Equal(t, "@gazette", seo.TwitterHandle)
}
