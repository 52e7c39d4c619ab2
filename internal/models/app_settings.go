package models

import "time"

type ThemeMode string

const (
	ThemeModeLight  ThemeMode = "light"
	ThemeModeDark   ThemeMode = "dark"
	ThemeModeSystem ThemeMode = "system"
)

// AppSettings is the settings shape the UI reads and mutates.
type AppSettings struct {
	Language        string    `json:"language"`
	ThemeMode       ThemeMode `json:"themeMode"`
	CustomFont      string    `json:"customFont"`
	MaxHistoryCount int       `json:"maxHistoryCount"`
	DataDirectory   string    `json:"dataDirectory"`
	Debug           bool      `json:"debug"`
}

// DefaultAppSettings returns a fresh copy of the documented defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Language:        "en",
		ThemeMode:       ThemeModeLight,
		CustomFont:      "",
		MaxHistoryCount: 50,
		DataDirectory:   "./data",
		Debug:           false,
	}
}

// AppSettingsPatch is a partial update; nil fields are left untouched.
type AppSettingsPatch struct {
	Language        *string    `json:"language,omitempty"`
	ThemeMode       *ThemeMode `json:"themeMode,omitempty"`
	CustomFont      *string    `json:"customFont,omitempty"`
	MaxHistoryCount *int       `json:"maxHistoryCount,omitempty"`
	DataDirectory   *string    `json:"dataDirectory,omitempty"`
	Debug           *bool      `json:"debug,omitempty"`
}

// Apply returns s with every non-nil field of p copied over it.
func (p AppSettingsPatch) Apply(s AppSettings) AppSettings {
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.ThemeMode != nil {
		s.ThemeMode = *p.ThemeMode
	}
	if p.CustomFont != nil {
		s.CustomFont = *p.CustomFont
	}
	if p.MaxHistoryCount != nil {
		s.MaxHistoryCount = *p.MaxHistoryCount
	}
	if p.DataDirectory != nil {
		s.DataDirectory = *p.DataDirectory
	}
	if p.Debug != nil {
		s.Debug = *p.Debug
	}
	return s
}

// AppSetting is the backend record exchanged over GetSetting/UpdateSetting.
// It doubles as the single-row settings table (ID=1).
type AppSetting struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	Language        string    `gorm:"not null" json:"language"`
	ThemeMode       string    `gorm:"not null" json:"theme_mode"`
	CustomFont      string    `json:"custom_font"`
	MaxHistoryCount int       `gorm:"not null" json:"max_history_count"`
	DataDirectory   string    `json:"data_dir"`
	Debug           bool      `json:"debug"`
	UpdatedAt       time.Time `json:"-"`
}
