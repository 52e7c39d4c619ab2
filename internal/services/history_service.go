package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"geministudio/internal/models"
	"geministudio/internal/repositories"
)

// HistoryService records executed queries, keeping at most the configured
// number of entries.
type HistoryService interface {
	Add(ctx context.Context, h *models.History) error
	List(ctx context.Context) ([]models.History, error)
}

type historyService struct {
	histories repositories.HistoryRepository
	limit     func() int
	logger    *slog.Logger
	now       func() time.Time
}

// NewHistoryService reads the retention limit through limit on every call,
// so a settings change applies to the next write. A non-positive limit keeps everything.
func NewHistoryService(histories repositories.HistoryRepository, limit func() int, logger *slog.Logger) HistoryService {
	if logger == nil {
		logger = slog.Default()
	}
	if limit == nil {
		limit = func() int { return 0 }
	}
	return &historyService{histories: histories, limit: limit, logger: logger, now: time.Now}
}

func (s *historyService) Add(ctx context.Context, h *models.History) error {
	if h == nil {
		return errors.New("history is required")
	}
	if h.Query == "" {
		return errors.New("query is required")
	}
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.Timestamp == 0 {
		h.Timestamp = s.now().UnixMilli()
	}

	if err := s.histories.Save(ctx, h); err != nil {
		s.logger.Error("save history failed", "reason", err.Error())
		return err
	}

	if keep := s.limit(); keep > 0 {
		if _, err := s.histories.TrimTo(ctx, keep); err != nil {
			s.logger.Error("delete old histories failed", "reason", err.Error())
		}
	}
	return nil
}

func (s *historyService) List(ctx context.Context) ([]models.History, error) {
	histories, err := s.histories.List(ctx, s.limit())
	if err != nil {
		s.logger.Error("list histories failed", "reason", err.Error())
		return nil, err
	}
	return histories, nil
}
