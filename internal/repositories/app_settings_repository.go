package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"geministudio/internal/models"
)

// ErrSettingNotFound is returned when no settings record has been saved yet.
var ErrSettingNotFound = errors.New("setting not found")

type AppSettingsRepository interface {
	Get(ctx context.Context) (*models.AppSetting, error)
	Update(ctx context.Context, settings *models.AppSetting) error
}

type appSettingsRepository struct {
	db *gorm.DB
}

func NewAppSettingsRepository(db *gorm.DB) AppSettingsRepository {
	return &appSettingsRepository{db: db}
}

func (r *appSettingsRepository) Get(ctx context.Context) (*models.AppSetting, error) {
	var settings models.AppSetting
	if err := r.db.WithContext(ctx).First(&settings, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, errors.Wrap(err, "load settings")
	}
	return &settings, nil
}

func (r *appSettingsRepository) Update(ctx context.Context, settings *models.AppSetting) error {
	// single-row table
	settings.ID = 1
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return errors.Wrap(err, "save settings")
	}
	return nil
}
