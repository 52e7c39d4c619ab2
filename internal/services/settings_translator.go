package services

import "geministudio/internal/models"

// ToBackendSettings renames the UI settings into the backend record shape.
func ToBackendSettings(s models.AppSettings) models.AppSetting {
	return models.AppSetting{
		Language:        s.Language,
		ThemeMode:       string(s.ThemeMode),
		CustomFont:      s.CustomFont,
		MaxHistoryCount: s.MaxHistoryCount,
		DataDirectory:   s.DataDirectory,
		Debug:           s.Debug,
	}
}

// FromBackendSettings is the inverse of ToBackendSettings. A missing
// custom_font or debug decodes to its zero value, which is already the
// documented default. Nothing is validated.
func FromBackendSettings(b models.AppSetting) models.AppSettings {
	return models.AppSettings{
		Language:        b.Language,
		ThemeMode:       models.ThemeMode(b.ThemeMode),
		CustomFont:      b.CustomFont,
		MaxHistoryCount: b.MaxHistoryCount,
		DataDirectory:   b.DataDirectory,
		Debug:           b.Debug,
	}
}
