package mocks

import (
	"context"

	"geministudio/internal/models"
	"geministudio/internal/repositories"
)

type ConnectionRepositoryMock struct {
	CreateFunc       func(ctx context.Context, cc *models.ConnectionConfig) error
	FindByNameFunc   func(ctx context.Context, name string) (*models.ConnectionConfig, error)
	ListFunc         func(ctx context.Context) ([]models.ConnectionConfig, error)
	UpdateFunc       func(ctx context.Context, cc *models.ConnectionConfig) error
	DeleteByNameFunc func(ctx context.Context, name string) error
}

func (m *ConnectionRepositoryMock) Create(ctx context.Context, cc *models.ConnectionConfig) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cc)
	}
	return nil
}

func (m *ConnectionRepositoryMock) FindByName(ctx context.Context, name string) (*models.ConnectionConfig, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, repositories.ErrConnectionNotFound
}

func (m *ConnectionRepositoryMock) List(ctx context.Context) ([]models.ConnectionConfig, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *ConnectionRepositoryMock) Update(ctx context.Context, cc *models.ConnectionConfig) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, cc)
	}
	return nil
}

func (m *ConnectionRepositoryMock) DeleteByName(ctx context.Context, name string) error {
	if m.DeleteByNameFunc != nil {
		return m.DeleteByNameFunc(ctx, name)
	}
	return nil
}
