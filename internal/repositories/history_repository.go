package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"geministudio/internal/models"
)

type HistoryRepository interface {
	// Save inserts h, replacing any entry with the same id.
	Save(ctx context.Context, h *models.History) error
	// List returns entries newest first. A non-positive limit means no limit.
	List(ctx context.Context, limit int) ([]models.History, error)
	// TrimTo deletes everything but the keep newest entries.
	TrimTo(ctx context.Context, keep int) (int64, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Save(ctx context.Context, h *models.History) error {
	return errors.Wrap(r.db.WithContext(ctx).Save(h).Error, "save history")
}

func (r *historyRepository) List(ctx context.Context, limit int) ([]models.History, error) {
	var histories []models.History
	q := r.db.WithContext(ctx).Order("timestamp DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&histories).Error; err != nil {
		return nil, errors.Wrap(err, "list histories")
	}
	return histories, nil
}

func (r *historyRepository) TrimTo(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	newest := r.db.Model(&models.History{}).
		Select("id").
		Order("timestamp DESC").
		Order("id DESC").
		Limit(keep)

	res := r.db.WithContext(ctx).Where("id NOT IN (?)", newest).Delete(&models.History{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "trim histories")
	}
	return res.RowsAffected, nil
}
