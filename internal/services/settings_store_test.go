package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geministudio/internal/events"
	"geministudio/internal/models"
	"geministudio/internal/services"
	"geministudio/internal/tests/mocks"
)

func newSettingsStore(t *testing.T, backend *mocks.SettingsBackendMock, opts ...services.SettingsOption) *services.SettingsStore {
	t.Helper()
	store := services.NewSettingsStore(backend, opts...)
	t.Cleanup(store.Close)
	return store
}

func TestSettingsStore_StartsWithDefaults(t *testing.T) {
	store := newSettingsStore(t, &mocks.SettingsBackendMock{})

	assert.Equal(t, models.DefaultAppSettings(), store.Settings())
	assert.False(t, store.IsInitialized())
}

func TestSettingsStore_Init_LoadsFromBackend(t *testing.T) {
	backend := &mocks.SettingsBackendMock{
		GetSettingFunc: func(ctx context.Context) (*models.AppSetting, error) {
			return &models.AppSetting{
				Language:        "fr",
				ThemeMode:       "dark",
				MaxHistoryCount: 100,
				DataDirectory:   "/var/data",
			}, nil
		},
	}
	store := newSettingsStore(t, backend)

	store.Init(context.Background())

	assert.True(t, store.IsInitialized())
	assert.Equal(t, models.AppSettings{
		Language:        "fr",
		ThemeMode:       models.ThemeModeDark,
		CustomFont:      "",
		MaxHistoryCount: 100,
		DataDirectory:   "/var/data",
		Debug:           false,
	}, store.Settings())
}

func TestSettingsStore_Init_BackendErrorUsesDefaults(t *testing.T) {
	backend := &mocks.SettingsBackendMock{
		GetSettingFunc: func(ctx context.Context) (*models.AppSetting, error) {
			return nil, errors.New("network error")
		},
	}
	store := newSettingsStore(t, backend)
	store.Update(models.AppSettingsPatch{Language: pointer.ToString("de")})
	store.Flush()

	store.Init(context.Background())

	assert.True(t, store.IsInitialized())
	assert.Equal(t, models.AppSettings{
		Language:        "en",
		ThemeMode:       models.ThemeModeLight,
		CustomFont:      "",
		MaxHistoryCount: 50,
		DataDirectory:   "./data",
		Debug:           false,
	}, store.Settings())
}

func TestSettingsStore_Init_NilRecordUsesDefaults(t *testing.T) {
	store := newSettingsStore(t, &mocks.SettingsBackendMock{})

	store.Init(context.Background())

	assert.True(t, store.IsInitialized())
	assert.Equal(t, models.DefaultAppSettings(), store.Settings())
}

func TestSettingsStore_Init_ReadsAtMostOnce(t *testing.T) {
	for _, fail := range []bool{false, true} {
		fail := fail
		backend := &mocks.SettingsBackendMock{
			GetSettingFunc: func(ctx context.Context) (*models.AppSetting, error) {
				if fail {
					return nil, errors.New("unavailable")
				}
				return &models.AppSetting{Language: "fr", ThemeMode: "dark"}, nil
			},
		}
		store := newSettingsStore(t, backend)

		store.Init(context.Background())
		store.Init(context.Background())

		assert.Equal(t, 1, backend.GetCalls())
	}
}

func TestSettingsStore_Init_ConcurrentCallsReadOnce(t *testing.T) {
	release := make(chan struct{})
	backend := &mocks.SettingsBackendMock{
		GetSettingFunc: func(ctx context.Context) (*models.AppSetting, error) {
			<-release
			return &models.AppSetting{Language: "fr"}, nil
		},
	}
	store := newSettingsStore(t, backend)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Init(context.Background())
		}()
	}
	close(release)
	wg.Wait()

	assert.Equal(t, 1, backend.GetCalls())
	assert.Equal(t, "fr", store.Settings().Language)
}

func TestSettingsStore_Start_LoadsInBackground(t *testing.T) {
	release := make(chan struct{})
	backend := &mocks.SettingsBackendMock{
		GetSettingFunc: func(ctx context.Context) (*models.AppSetting, error) {
			<-release
			return &models.AppSetting{Language: "zh-CN", ThemeMode: "system", MaxHistoryCount: 10}, nil
		},
	}
	store := newSettingsStore(t, backend)

	store.Start(context.Background())
	// Defaults are visible while the load is in flight.
	assert.Equal(t, models.DefaultAppSettings(), store.Settings())

	close(release)
	require.Eventually(t, store.IsInitialized, time.Second, 5*time.Millisecond)
	assert.Equal(t, "zh-CN", store.Settings().Language)
}

func TestSettingsStore_Update_MergesAndPersists(t *testing.T) {
	backend := &mocks.SettingsBackendMock{}
	store := newSettingsStore(t, backend)

	got := store.Update(models.AppSettingsPatch{
		Language:        pointer.ToString("zh-CN"),
		MaxHistoryCount: pointer.ToInt(-1),
	})

	want := models.DefaultAppSettings()
	want.Language = "zh-CN"
	want.MaxHistoryCount = -1
	assert.Equal(t, want, got)
	assert.Equal(t, want, store.Settings())

	store.Flush()
	written := backend.Written()
	require.Len(t, written, 1)
	assert.Equal(t, services.ToBackendSettings(want), written[0])
}

func TestSettingsStore_Update_EmptyPatchKeepsEverything(t *testing.T) {
	store := newSettingsStore(t, &mocks.SettingsBackendMock{})
	store.Update(models.AppSettingsPatch{Debug: pointer.ToBool(true)})

	before := store.Settings()
	assert.Equal(t, before, store.Update(models.AppSettingsPatch{}))
}

func TestSettingsStore_Update_FailureIsNotRolledBack(t *testing.T) {
	backend := &mocks.SettingsBackendMock{
		UpdateSettingFunc: func(ctx context.Context, settings *models.AppSetting) error {
			return errors.New("disk full")
		},
	}
	var persisted []error
	store := newSettingsStore(t, backend, services.WithPersistCallback(func(s models.AppSettings, err error) {
		persisted = append(persisted, err)
	}))

	themeMode := models.ThemeModeDark
	store.Update(models.AppSettingsPatch{ThemeMode: &themeMode})
	store.Flush()

	assert.Equal(t, models.ThemeModeDark, store.Settings().ThemeMode)
	require.Len(t, persisted, 1)
	assert.EqualError(t, persisted[0], "disk full")
	assert.Len(t, backend.Written(), 1, "no retry")
}

func TestSettingsStore_Update_DoesNotWaitForBackend(t *testing.T) {
	release := make(chan struct{})
	backend := &mocks.SettingsBackendMock{
		UpdateSettingFunc: func(ctx context.Context, settings *models.AppSetting) error {
			<-release
			return nil
		},
	}
	store := newSettingsStore(t, backend)
	defer close(release)

	done := make(chan models.AppSettings, 1)
	go func() { done <- store.Update(models.AppSettingsPatch{CustomFont: pointer.ToString("Menlo")}) }()

	select {
	case s := <-done:
		assert.Equal(t, "Menlo", s.CustomFont)
	case <-time.After(time.Second):
		t.Fatal("Update blocked on the backend write")
	}
}

func TestSettingsStore_WritesInIssueOrder(t *testing.T) {
	backend := &mocks.SettingsBackendMock{}
	store := newSettingsStore(t, backend)

	for i := 1; i <= 20; i++ {
		store.Update(models.AppSettingsPatch{MaxHistoryCount: pointer.ToInt(i)})
	}
	store.Flush()

	written := backend.Written()
	require.Len(t, written, 20)
	for i, w := range written {
		assert.Equal(t, i+1, w.MaxHistoryCount)
	}
	assert.Equal(t, 20, store.Settings().MaxHistoryCount)
}

func TestSettingsStore_Reset(t *testing.T) {
	backend := &mocks.SettingsBackendMock{}
	store := newSettingsStore(t, backend)
	store.Update(models.AppSettingsPatch{
		Language:      pointer.ToString("fr"),
		DataDirectory: pointer.ToString("/tmp"),
		Debug:         pointer.ToBool(true),
	})

	got := store.Reset()
	store.Flush()

	assert.Equal(t, models.DefaultAppSettings(), got)
	assert.Equal(t, models.DefaultAppSettings(), store.Settings())
	written := backend.Written()
	require.Len(t, written, 2)
	assert.Equal(t, services.ToBackendSettings(models.DefaultAppSettings()), written[1])
}

func TestSettingsStore_ObserversAndEvents(t *testing.T) {
	var mu sync.Mutex
	var names []string
	emitter := events.FuncEmitter(func(name string, payload any) {
		mu.Lock()
		names = append(names, name)
		mu.Unlock()
	})
	store := newSettingsStore(t, &mocks.SettingsBackendMock{}, services.WithSettingsEmitter(emitter))

	var seen []string
	cancel := store.Subscribe(func(s models.AppSettings) { seen = append(seen, s.Language) })

	store.Update(models.AppSettingsPatch{Language: pointer.ToString("fr")})
	cancel()
	store.Update(models.AppSettingsPatch{Language: pointer.ToString("de")})
	store.Flush()

	assert.Equal(t, []string{"fr"}, seen)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		events.SettingsChanged,
		events.SettingsChanged,
		events.SettingsPersisted,
		events.SettingsPersisted,
	}, sortChangedFirst(names))
}

// sortChangedFirst orders names so change events precede write results;
// the two kinds come from different goroutines.
func sortChangedFirst(names []string) []string {
	var changed, persisted []string
	for _, n := range names {
		if n == events.SettingsChanged {
			changed = append(changed, n)
		} else {
			persisted = append(persisted, n)
		}
	}
	return append(changed, persisted...)
}

func TestSettingsStore_SharedQueueNotClosed(t *testing.T) {
	queue := services.NewPersistQueue(context.Background())
	defer queue.Close()

	store := services.NewSettingsStore(&mocks.SettingsBackendMock{}, services.WithPersistQueue(queue))
	store.Update(models.AppSettingsPatch{Debug: pointer.ToBool(true)})
	store.Close()

	assert.True(t, queue.Enqueue(func(context.Context) error { return nil }, nil))
}
