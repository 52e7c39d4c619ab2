package services

import (
	"log/slog"

	"gorm.io/gorm"

	"geministudio/internal/repositories"
)

// DbServices aggregates all domain services backed by the database.
type DbServices struct {
	AppSettings AppSettingsService
	Connections ConnectionService
	Histories   HistoryService
}

// NewDbServices constructs the service container using repositories backed by db.
// historyLimit is consulted on every history call.
func NewDbServices(db *gorm.DB, secrets *KeyringService, historyLimit func() int, logger *slog.Logger) *DbServices {
	return &DbServices{
		AppSettings: NewAppSettingsService(repositories.NewAppSettingsRepository(db)),
		Connections: NewConnectionService(repositories.NewConnectionRepository(db), secrets, logger),
		Histories:   NewHistoryService(repositories.NewHistoryRepository(db), historyLimit, logger),
	}
}
