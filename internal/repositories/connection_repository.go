package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"geministudio/internal/models"
)

var ErrConnectionNotFound = errors.New("connection not found")

type ConnectionRepository interface {
	Create(ctx context.Context, cc *models.ConnectionConfig) error
	FindByName(ctx context.Context, name string) (*models.ConnectionConfig, error)
	List(ctx context.Context) ([]models.ConnectionConfig, error)
	Update(ctx context.Context, cc *models.ConnectionConfig) error
	DeleteByName(ctx context.Context, name string) error
}

type connectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, cc *models.ConnectionConfig) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(cc).Error, "create connection")
}

func (r *connectionRepository) FindByName(ctx context.Context, name string) (*models.ConnectionConfig, error) {
	var cc models.ConnectionConfig
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&cc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, errors.Wrap(err, "find connection")
	}
	return &cc, nil
}

func (r *connectionRepository) List(ctx context.Context) ([]models.ConnectionConfig, error) {
	var connections []models.ConnectionConfig
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&connections).Error; err != nil {
		return nil, errors.Wrap(err, "list connections")
	}
	return connections, nil
}

func (r *connectionRepository) Update(ctx context.Context, cc *models.ConnectionConfig) error {
	return errors.Wrap(r.db.WithContext(ctx).Save(cc).Error, "update connection")
}

func (r *connectionRepository) DeleteByName(ctx context.Context, name string) error {
	err := r.db.WithContext(ctx).Where("name = ?", name).Delete(&models.ConnectionConfig{}).Error
	return errors.Wrap(err, "delete connection")
}
