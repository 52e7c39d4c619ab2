package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geministudio/internal/models"
	"geministudio/internal/services"
	"geministudio/internal/tests/mocks"
)

func TestHistoryService_Add_AssignsIDAndTrims(t *testing.T) {
	var created *models.History
	trimmedTo := -1
	repo := &mocks.HistoryRepositoryMock{
		SaveFunc: func(ctx context.Context, h *models.History) error {
			created = h
			return nil
		},
		TrimToFunc: func(ctx context.Context, keep int) (int64, error) {
			trimmedTo = keep
			return 0, nil
		},
	}
	svc := services.NewHistoryService(repo, func() int { return 50 }, nil)

	err := svc.Add(context.Background(), &models.History{Query: "SHOW DATABASES", Success: true})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.Timestamp)
	assert.Equal(t, 50, trimmedTo)
}

func TestHistoryService_Add_NoLimitSkipsTrim(t *testing.T) {
	repo := &mocks.HistoryRepositoryMock{
		TrimToFunc: func(ctx context.Context, keep int) (int64, error) {
			t.Fatal("trim must not run without a positive limit")
			return 0, nil
		},
	}
	svc := services.NewHistoryService(repo, func() int { return 0 }, nil)

	require.NoError(t, svc.Add(context.Background(), &models.History{ID: "1", Query: "SELECT 1", Timestamp: 10}))
}

func TestHistoryService_Add_TrimFailureIsNotFatal(t *testing.T) {
	repo := &mocks.HistoryRepositoryMock{
		TrimToFunc: func(ctx context.Context, keep int) (int64, error) {
			return 0, errors.New("locked")
		},
	}
	svc := services.NewHistoryService(repo, func() int { return 1 }, nil)

	assert.NoError(t, svc.Add(context.Background(), &models.History{Query: "SELECT 1"}))
}

func TestHistoryService_Add_Validation(t *testing.T) {
	svc := services.NewHistoryService(&mocks.HistoryRepositoryMock{}, nil, nil)

	assert.EqualError(t, svc.Add(context.Background(), nil), "history is required")
	assert.EqualError(t, svc.Add(context.Background(), &models.History{}), "query is required")
}

func TestHistoryService_List_UsesCurrentLimit(t *testing.T) {
	var limits []int
	repo := &mocks.HistoryRepositoryMock{
		ListFunc: func(ctx context.Context, limit int) ([]models.History, error) {
			limits = append(limits, limit)
			return []models.History{{ID: "h1"}}, nil
		},
	}
	limit := 5
	svc := services.NewHistoryService(repo, func() int { return limit }, nil)

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	limit = 7
	got, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{5, 7}, limits)
	assert.Len(t, got, 1)
}
