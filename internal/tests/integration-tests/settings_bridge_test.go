package integration_tests

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"geministudio/internal/database"
	"geministudio/internal/models"
	"geministudio/internal/repositories"
	"geministudio/internal/services"
)

func openBackend(t *testing.T, path string) (services.AppSettingsService, func()) {
	t.Helper()
	db, err := database.Init(database.Config{Path: path, LogLevel: logger.Silent})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	return services.NewAppSettingsService(repositories.NewAppSettingsRepository(db)), func() { _ = sqlDB.Close() }
}

// A store writes through to sqlite, and the store of the next process
// loads what the first one left behind.
func TestSettingsBridge_PersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.db")
	ctx := context.Background()

	backend, closeDB := openBackend(t, path)
	first := services.NewSettingsStore(backend)
	first.Init(ctx)
	assert.Equal(t, models.DefaultAppSettings(), first.Settings(), "empty database loads defaults")

	mode := models.ThemeModeSystem
	first.Update(models.AppSettingsPatch{
		Language:        pointer.ToString("zh-CN"),
		ThemeMode:       &mode,
		CustomFont:      pointer.ToString("Menlo"),
		MaxHistoryCount: pointer.ToInt(0),
	})
	first.Update(models.AppSettingsPatch{Debug: pointer.ToBool(true)})
	first.Close()
	closeDB()

	backend, closeDB = openBackend(t, path)
	defer closeDB()
	second := services.NewSettingsStore(backend)
	defer second.Close()
	second.Init(ctx)

	assert.Equal(t, models.AppSettings{
		Language:        "zh-CN",
		ThemeMode:       models.ThemeModeSystem,
		CustomFont:      "Menlo",
		MaxHistoryCount: 0,
		DataDirectory:   "./data",
		Debug:           true,
	}, second.Settings())

	second.Reset()
	second.Flush()
	record, err := backend.GetSetting(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAppSettings(), services.FromBackendSettings(*record))
}
