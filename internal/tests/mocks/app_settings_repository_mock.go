package mocks

import (
	"context"

	"geministudio/internal/models"
	"geministudio/internal/repositories"
)

type AppSettingsRepositoryMock struct {
	GetFunc    func(ctx context.Context) (*models.AppSetting, error)
	UpdateFunc func(ctx context.Context, settings *models.AppSetting) error
}

func (m *AppSettingsRepositoryMock) Get(ctx context.Context) (*models.AppSetting, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, repositories.ErrSettingNotFound
}

func (m *AppSettingsRepositoryMock) Update(ctx context.Context, settings *models.AppSetting) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, settings)
	}
	return nil
}
