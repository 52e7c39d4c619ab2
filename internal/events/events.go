package events

import (
	"time"

	"github.com/google/uuid"

	"geministudio/internal/models"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	SettingsChanged   = "events:settings:changed"
	SettingsPersisted = "events:settings:persisted"
	ThemeChanged      = "events:theme:changed"
)

// SettingsEvent is pushed to the UI whenever the in-memory settings change
// or a background write completes.
type SettingsEvent struct {
	ID        string             `json:"id"`
	Type      EventType          `json:"type"`
	Settings  models.AppSettings `json:"settings"`
	Message   string             `json:"message,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

func NewSettingsEvent(eventType EventType, settings models.AppSettings, message string) SettingsEvent {
	return SettingsEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Settings:  settings,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// ThemeEvent carries the resolved theme after every assignment.
type ThemeEvent struct {
	Theme     models.Theme `json:"theme"`
	Timestamp time.Time    `json:"timestamp"`
}

func NewThemeEvent(theme models.Theme) ThemeEvent {
	return ThemeEvent{Theme: theme, Timestamp: time.Now()}
}
