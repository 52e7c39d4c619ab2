package mocks

import (
	"context"

	"geministudio/internal/models"
)

type HistoryRepositoryMock struct {
	SaveFunc   func(ctx context.Context, h *models.History) error
	ListFunc   func(ctx context.Context, limit int) ([]models.History, error)
	TrimToFunc func(ctx context.Context, keep int) (int64, error)
}

func (m *HistoryRepositoryMock) Save(ctx context.Context, h *models.History) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, h)
	}
	return nil
}

func (m *HistoryRepositoryMock) List(ctx context.Context, limit int) ([]models.History, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return nil, nil
}

func (m *HistoryRepositoryMock) TrimTo(ctx context.Context, keep int) (int64, error) {
	if m.TrimToFunc != nil {
		return m.TrimToFunc(ctx, keep)
	}
	return 0, nil
}
