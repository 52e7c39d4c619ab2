package services

import (
	"context"
	"errors"

	"geministudio/internal/models"
	"geministudio/internal/repositories"
)

// ErrSettingNotFound is returned by GetSetting before anything was saved.
var ErrSettingNotFound = repositories.ErrSettingNotFound

// AppSettingsService is the persistence store behind GetSetting/UpdateSetting.
type AppSettingsService interface {
	GetSetting(ctx context.Context) (*models.AppSetting, error)
	UpdateSetting(ctx context.Context, settings *models.AppSetting) error
}

type appSettingsService struct {
	appSettings repositories.AppSettingsRepository
}

func NewAppSettingsService(appSettings repositories.AppSettingsRepository) AppSettingsService {
	return &appSettingsService{appSettings: appSettings}
}

func (s *appSettingsService) GetSetting(ctx context.Context) (*models.AppSetting, error) {
	return s.appSettings.Get(ctx)
}

func (s *appSettingsService) UpdateSetting(ctx context.Context, settings *models.AppSetting) error {
	if settings == nil {
		return errors.New("settings are required")
	}
	// The caller's record is the full desired state; store a copy so the
	// row id never leaks back into it.
	record := *settings
	return s.appSettings.Update(ctx, &record)
}
