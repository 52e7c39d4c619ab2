package services

import (
	"log/slog"
	"sync"

	"geministudio/internal/events"
	"geministudio/internal/models"
)

const (
	ThemeStorageKey = "theme"
	ThemeAttribute  = "data-theme"
)

// ThemeStore holds the resolved light/dark theme of this device. It never
// talks to the settings backend.
type ThemeStore struct {
	storage  LocalStorage
	document Document
	emitter  events.Emitter
	logger   *slog.Logger

	mu          sync.Mutex
	theme       models.Theme
	initialized bool
}

type ThemeOption func(*ThemeStore)

func WithThemeEmitter(emitter events.Emitter) ThemeOption {
	return func(t *ThemeStore) { t.emitter = emitter }
}

func WithThemeLogger(logger *slog.Logger) ThemeOption {
	return func(t *ThemeStore) { t.logger = logger }
}

func NewThemeStore(storage LocalStorage, document Document, opts ...ThemeOption) *ThemeStore {
	if storage == nil {
		storage = NoopStorage{}
	}
	if document == nil {
		document = NoopDocument{}
	}
	t := &ThemeStore{
		storage:  storage,
		document: document,
		emitter:  events.NopEmitter{},
		logger:   slog.Default(),
		theme:    models.ThemeLight,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init adopts a previously saved theme and applies it. It does nothing when
// already initialized or when there is no local storage.
func (t *ThemeStore) Init() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized || !t.storage.Available() {
		return
	}
	theme := t.theme
	if saved, ok := t.storage.GetItem(ThemeStorageKey); ok {
		if models.Theme(saved).Valid() {
			theme = models.Theme(saved)
		} else {
			t.logger.Debug("ignoring unknown saved theme", "value", saved)
		}
	}
	t.assignLocked(theme)
	t.initialized = true
}

// Toggle flips light and dark and returns the new theme.
func (t *ThemeStore) Toggle() models.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.assignLocked(t.theme.Toggled())
	return t.theme
}

func (t *ThemeStore) Theme() models.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.theme
}

func (t *ThemeStore) IsInitialized() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initialized
}

// assignLocked runs the side effects of every assignment, in order: save,
// then reflect on the document.
func (t *ThemeStore) assignLocked(theme models.Theme) {
	t.theme = theme

	if t.storage.Available() {
		if err := t.storage.SetItem(ThemeStorageKey, string(theme)); err != nil {
			t.logger.Debug("theme not saved to local storage", "reason", err.Error())
		}
	}
	t.document.SetAttribute(ThemeAttribute, string(theme))
	t.emitter.Emit(events.ThemeChanged, events.NewThemeEvent(theme))
}
