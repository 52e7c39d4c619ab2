package services

import (
	"context"
	"log/slog"
	"sync"

	"geministudio/internal/events"
	"geministudio/internal/models"
)

// SettingsBackend is the persistence side of the settings bridge.
type SettingsBackend interface {
	GetSetting(ctx context.Context) (*models.AppSetting, error)
	UpdateSetting(ctx context.Context, settings *models.AppSetting) error
}

// SettingsStore holds the one settings object of the process. Mutations are
// applied in memory first and written to the backend in the background; a
// failed write is logged and never rolled back.
type SettingsStore struct {
	backend   SettingsBackend
	logger    *slog.Logger
	emitter   events.Emitter
	queue     *PersistQueue
	ownsQueue bool
	onPersist func(models.AppSettings, error)

	initMu sync.Mutex

	mu          sync.RWMutex
	settings    models.AppSettings
	initialized bool
	observers   map[int]func(models.AppSettings)
	nextID      int
}

type SettingsOption func(*SettingsStore)

func WithSettingsLogger(logger *slog.Logger) SettingsOption {
	return func(s *SettingsStore) { s.logger = logger }
}

func WithSettingsEmitter(emitter events.Emitter) SettingsOption {
	return func(s *SettingsStore) { s.emitter = emitter }
}

// WithPersistQueue shares a queue with other writers. The store will not close it.
func WithPersistQueue(queue *PersistQueue) SettingsOption {
	return func(s *SettingsStore) { s.queue = queue }
}

// WithPersistCallback observes the outcome of every background write.
func WithPersistCallback(fn func(models.AppSettings, error)) SettingsOption {
	return func(s *SettingsStore) { s.onPersist = fn }
}

func NewSettingsStore(backend SettingsBackend, opts ...SettingsOption) *SettingsStore {
	s := &SettingsStore{
		backend:   backend,
		logger:    slog.Default(),
		emitter:   events.NopEmitter{},
		settings:  models.DefaultAppSettings(),
		observers: make(map[int]func(models.AppSettings)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.queue == nil {
		s.queue = NewPersistQueue(context.Background())
		s.ownsQueue = true
	}
	return s
}

// Start loads the settings in the background. Callers see the defaults
// until the load resolves.
func (s *SettingsStore) Start(ctx context.Context) {
	go s.Init(ctx)
}

// Init reads the backend at most once per store. Any failure, including an
// empty answer, leaves the store on the defaults.
func (s *SettingsStore) Init(ctx context.Context) {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.IsInitialized() {
		return
	}

	loaded := models.DefaultAppSettings()
	record, err := s.backend.GetSetting(ctx)
	switch {
	case err != nil:
		s.logger.Error("failed to load settings from backend, using defaults", "reason", err.Error())
	case record == nil:
		s.logger.Warn("backend returned no settings, using defaults")
	default:
		loaded = FromBackendSettings(*record)
	}

	s.mu.Lock()
	s.settings = loaded
	s.initialized = true
	s.mu.Unlock()

	s.logger.Info("settings initialized", "language", loaded.Language, "theme_mode", loaded.ThemeMode)
	s.notify(loaded)
}

func (s *SettingsStore) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// Settings returns a snapshot of the current settings.
func (s *SettingsStore) Settings() models.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update merges patch into the settings and schedules a write of the result.
func (s *SettingsStore) Update(patch models.AppSettingsPatch) models.AppSettings {
	s.mu.Lock()
	next := patch.Apply(s.settings)
	s.settings = next
	s.persistLocked(next, "failed to save settings to backend")
	s.mu.Unlock()

	s.notify(next)
	return next
}

// Reset restores the defaults and schedules a write of them.
func (s *SettingsStore) Reset() models.AppSettings {
	s.mu.Lock()
	next := models.DefaultAppSettings()
	s.settings = next
	s.persistLocked(next, "failed to save default settings to backend")
	s.mu.Unlock()

	s.notify(next)
	return next
}

// Subscribe registers fn for every change. The returned func unsubscribes.
func (s *SettingsStore) Subscribe(fn func(models.AppSettings)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// Flush waits for the background writes issued so far.
func (s *SettingsStore) Flush() {
	s.queue.Flush()
}

func (s *SettingsStore) Close() {
	if s.ownsQueue {
		s.queue.Close()
		return
	}
	s.queue.Flush()
}

// persistLocked must run under s.mu so writes are queued in mutation order.
func (s *SettingsStore) persistLocked(snapshot models.AppSettings, failure string) {
	record := ToBackendSettings(snapshot)
	queued := s.queue.Enqueue(
		func(ctx context.Context) error {
			return s.backend.UpdateSetting(ctx, &record)
		},
		func(err error) {
			if err != nil {
				s.logger.Error(failure, "reason", err.Error())
				s.emitter.Emit(events.SettingsPersisted, events.NewSettingsEvent(events.EventError, snapshot, err.Error()))
			} else {
				s.emitter.Emit(events.SettingsPersisted, events.NewSettingsEvent(events.EventSuccess, snapshot, ""))
			}
			if s.onPersist != nil {
				s.onPersist(snapshot, err)
			}
		},
	)
	if !queued {
		s.logger.Warn("settings store closed, change kept in memory only")
	}
}

func (s *SettingsStore) notify(settings models.AppSettings) {
	s.mu.RLock()
	observers := make([]func(models.AppSettings), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.RUnlock()

	for _, fn := range observers {
		fn(settings)
	}
	s.emitter.Emit(events.SettingsChanged, events.NewSettingsEvent(events.EventInfo, settings, ""))
}
