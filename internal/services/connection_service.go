package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"geministudio/internal/models"
	"geministudio/internal/repositories"
)

var (
	ErrConnectionExists   = errors.New("connect already exist")
	ErrConnectionNotFound = repositories.ErrConnectionNotFound
)

// ConnectionService manages saved connection profiles. Dialing them is the
// query engine's job.
type ConnectionService interface {
	Add(ctx context.Context, cc *models.ConnectionConfig) error
	Update(ctx context.Context, name string, cc *models.ConnectionConfig) error
	Delete(ctx context.Context, name string) error
	Get(ctx context.Context, name string) (*models.ConnectionConfig, error)
	List(ctx context.Context) ([]models.ConnectionConfig, error)
}

type connectionService struct {
	connections repositories.ConnectionRepository
	secrets     *KeyringService
	logger      *slog.Logger
}

func NewConnectionService(connections repositories.ConnectionRepository, secrets *KeyringService, logger *slog.Logger) ConnectionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &connectionService{connections: connections, secrets: secrets, logger: logger}
}

func validateConnection(cc *models.ConnectionConfig) error {
	if cc == nil {
		return errors.New("connection is required")
	}
	cc.Name = strings.TrimSpace(cc.Name)
	if cc.Name == "" {
		return errors.New("connection name is required")
	}
	if cc.Protocol == "" {
		cc.Protocol = "http"
	}
	if cc.Protocol != "http" && cc.Protocol != "https" {
		return fmt.Errorf("protocol must be 'http' or 'https', got %q", cc.Protocol)
	}
	return nil
}

func (s *connectionService) Add(ctx context.Context, cc *models.ConnectionConfig) error {
	if err := validateConnection(cc); err != nil {
		return err
	}
	if _, err := s.connections.FindByName(ctx, cc.Name); err == nil {
		s.logger.Error("connect already exists", "connection", cc.Name)
		return ErrConnectionExists
	} else if !errors.Is(err, ErrConnectionNotFound) {
		return err
	}

	if err := s.connections.Create(ctx, cc); err != nil {
		return err
	}
	if err := s.storeSecrets(cc); err != nil {
		// A profile without its secrets is unusable.
		if derr := s.connections.DeleteByName(ctx, cc.Name); derr != nil {
			s.logger.Error("remove connect after secret failure", "name", cc.Name, "reason", derr.Error())
		}
		_ = s.secrets.DeleteSecrets(cc.Name)
		return err
	}
	s.logger.Info("add connect", "name", cc.Name)
	return nil
}

func (s *connectionService) Update(ctx context.Context, name string, cc *models.ConnectionConfig) error {
	if err := validateConnection(cc); err != nil {
		return err
	}
	existing, err := s.connections.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrConnectionNotFound) {
			s.logger.Error("connect does not exist", "name", name)
		}
		return err
	}
	if cc.Name != name {
		if _, err := s.connections.FindByName(ctx, cc.Name); err == nil {
			return ErrConnectionExists
		} else if !errors.Is(err, ErrConnectionNotFound) {
			return err
		}
	}

	cc.ID = existing.ID
	cc.CreatedAt = existing.CreatedAt
	if err := s.connections.Update(ctx, cc); err != nil {
		return err
	}
	if cc.Name != name {
		if err := s.secrets.DeleteSecrets(name); err != nil {
			return err
		}
	}
	if err := s.storeSecrets(cc); err != nil {
		return err
	}
	s.logger.Info("update connect", "name", name)
	return nil
}

func (s *connectionService) Delete(ctx context.Context, name string) error {
	if err := s.connections.DeleteByName(ctx, name); err != nil {
		return err
	}
	return s.secrets.DeleteSecrets(name)
}

func (s *connectionService) Get(ctx context.Context, name string) (*models.ConnectionConfig, error) {
	cc, err := s.connections.FindByName(ctx, name)
	if err != nil {
		s.logger.Error("get connect failed", "reason", err.Error())
		return nil, err
	}
	if err := s.loadSecrets(cc); err != nil {
		return nil, err
	}
	return cc, nil
}

func (s *connectionService) List(ctx context.Context) ([]models.ConnectionConfig, error) {
	connections, err := s.connections.List(ctx)
	if err != nil {
		s.logger.Error("list connects failed", "reason", err.Error())
		return nil, err
	}
	for i := range connections {
		if err := s.loadSecrets(&connections[i]); err != nil {
			return nil, err
		}
	}
	return connections, nil
}

func (s *connectionService) storeSecrets(cc *models.ConnectionConfig) error {
	for field, value := range map[string]string{
		SecretPassword:         cc.Password,
		SecretSSHPassword:      cc.SSHPassword,
		SecretSSHKeyPassphrase: cc.SSHKeyPassphrase,
	} {
		if err := s.secrets.StoreSecret(cc.Name, field, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *connectionService) loadSecrets(cc *models.ConnectionConfig) error {
	var err error
	if cc.Password, err = s.secrets.GetSecret(cc.Name, SecretPassword); err != nil {
		return err
	}
	if cc.SSHPassword, err = s.secrets.GetSecret(cc.Name, SecretSSHPassword); err != nil {
		return err
	}
	if cc.SSHKeyPassphrase, err = s.secrets.GetSecret(cc.Name, SecretSSHKeyPassphrase); err != nil {
		return err
	}
	return nil
}
