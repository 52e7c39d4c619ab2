package main

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/AlekSi/pointer"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"geministudio/internal/locales"
	"geministudio/internal/models"
	"geministudio/internal/services"
)

// App struct
type App struct {
	ctx      context.Context
	logger   *slog.Logger
	db       *services.DbServices
	settings *services.SettingsStore
	theme    *services.ThemeStore
	locales  *locales.Registry
	locale   string
	backend  *debugTracker
	dbClose  func() error
}

// debugTracker remembers the debug flag of the last record read from or
// written to the settings backend.
type debugTracker struct {
	services.SettingsBackend
	debug atomic.Bool
}

func newDebugTracker(backend services.SettingsBackend) *debugTracker {
	return &debugTracker{SettingsBackend: backend}
}

func (d *debugTracker) GetSetting(ctx context.Context) (*models.AppSetting, error) {
	setting, err := d.SettingsBackend.GetSetting(ctx)
	if err == nil && setting != nil {
		d.debug.Store(setting.Debug)
	}
	return setting, err
}

func (d *debugTracker) UpdateSetting(ctx context.Context, settings *models.AppSetting) error {
	if err := d.SettingsBackend.UpdateSetting(ctx, settings); err != nil {
		return err
	}
	d.debug.Store(settings.Debug)
	return nil
}

// NewApp creates a new App application struct. backend must be the one the
// settings store writes through.
func NewApp(logger *slog.Logger, db *services.DbServices, backend *debugTracker, settings *services.SettingsStore, theme *services.ThemeStore, registry *locales.Registry, bootLocale string) *App {
	return &App{
		ctx:      context.Background(),
		logger:   logger,
		db:       db,
		backend:  backend,
		settings: settings,
		theme:    theme,
		locales:  registry,
		locale:   registry.Select(bootLocale),
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	if _, err := a.backend.GetSetting(ctx); err != nil {
		a.logger.Info("no saved settings yet", "reason", err.Error())
	}
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	// Pending settings writes go out before the database closes.
	a.settings.Close()

	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			a.logger.Error("close database failed", "reason", err.Error())
		} else {
			a.logger.Info("database closed")
		}
		a.dbClose = nil
	}
}

// GetSetting returns the persisted backend settings record.
func (a *App) GetSetting() (*models.AppSetting, error) {
	setting, err := a.backend.GetSetting(a.ctx)
	if err != nil {
		a.logger.Error("get setting failed", "reason", err.Error())
		return nil, err
	}
	return setting, nil
}

// UpdateSetting persists the full backend settings record.
func (a *App) UpdateSetting(settings *models.AppSetting) error {
	if settings == nil {
		return errors.New("settings are required")
	}
	if err := a.backend.UpdateSetting(a.ctx, settings); err != nil {
		a.logger.Error("update settings failed", "reason", err.Error())
		return err
	}
	return nil
}

// GetAppSettings returns the in-memory settings the UI renders.
func (a *App) GetAppSettings() models.AppSettings {
	return a.settings.Settings()
}

func (a *App) UpdateAppSettings(patch models.AppSettingsPatch) models.AppSettings {
	return a.settings.Update(patch)
}

func (a *App) ResetAppSettings() models.AppSettings {
	return a.settings.Reset()
}

// SelectDataDirectory opens a native directory picker and stores the choice.
func (a *App) SelectDataDirectory() (string, error) {
	dir, err := runtime.OpenDirectoryDialog(a.ctx, runtime.OpenDialogOptions{
		Title:            "Select Data Directory",
		DefaultDirectory: a.settings.Settings().DataDirectory,
	})
	if err != nil {
		return "", err
	}
	if dir == "" {
		// cancelled
		return "", nil
	}
	a.settings.Update(models.AppSettingsPatch{DataDirectory: pointer.ToString(dir)})
	return dir, nil
}

// OpenFileDialog picks a certificate or key file for a connection profile.
func (a *App) OpenFileDialog() (string, error) {
	return runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Select File",
	})
}

func (a *App) GetTheme() models.Theme {
	return a.theme.Theme()
}

func (a *App) ToggleTheme() models.Theme {
	return a.theme.Toggle()
}

// GetLocale returns the locale chosen at boot.
func (a *App) GetLocale() string {
	return a.locale
}

func (a *App) GetLocales() []string {
	return a.locales.Locales()
}

func (a *App) GetMessages() locales.Messages {
	return a.locales.Messages(a.locale)
}

func (a *App) Translate(key string) string {
	return a.locales.T(a.locale, key)
}

func (a *App) ListConnects() []models.ConnectionConfig {
	connects, err := a.db.Connections.List(a.ctx)
	if err != nil {
		return []models.ConnectionConfig{}
	}
	return connects
}

func (a *App) AddConnect(cc *models.ConnectionConfig) error {
	return a.db.Connections.Add(a.ctx, cc)
}

func (a *App) UpdateConnect(name string, cc *models.ConnectionConfig) error {
	return a.db.Connections.Update(a.ctx, name, cc)
}

func (a *App) DeleteConnect(name string) error {
	return a.db.Connections.Delete(a.ctx, name)
}

func (a *App) GetConnect(name string) (*models.ConnectionConfig, error) {
	return a.db.Connections.Get(a.ctx, name)
}

func (a *App) GetHistories() ([]models.History, error) {
	return a.db.Histories.List(a.ctx)
}

func (a *App) AddHistory(history *models.History) error {
	return a.db.Histories.Add(a.ctx, history)
}

// IsDebug reports the debug flag of the last settings record seen by the backend.
func (a *App) IsDebug() bool {
	return a.backend.debug.Load()
}
