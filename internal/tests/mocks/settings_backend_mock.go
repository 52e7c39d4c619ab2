package mocks

import (
	"context"
	"sync"

	"geministudio/internal/models"
)

// SettingsBackendMock counts calls and keeps every record written to it.
type SettingsBackendMock struct {
	GetSettingFunc    func(ctx context.Context) (*models.AppSetting, error)
	UpdateSettingFunc func(ctx context.Context, settings *models.AppSetting) error

	mu       sync.Mutex
	getCalls int
	written  []models.AppSetting
}

func (m *SettingsBackendMock) GetSetting(ctx context.Context) (*models.AppSetting, error) {
	m.mu.Lock()
	m.getCalls++
	m.mu.Unlock()
	if m.GetSettingFunc != nil {
		return m.GetSettingFunc(ctx)
	}
	return nil, nil
}

func (m *SettingsBackendMock) UpdateSetting(ctx context.Context, settings *models.AppSetting) error {
	m.mu.Lock()
	m.written = append(m.written, *settings)
	m.mu.Unlock()
	if m.UpdateSettingFunc != nil {
		return m.UpdateSettingFunc(ctx, settings)
	}
	return nil
}

func (m *SettingsBackendMock) GetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getCalls
}

func (m *SettingsBackendMock) Written() []models.AppSetting {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AppSetting(nil), m.written...)
}
