package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/99designs/keyring"
)

// Secret fields of a connection profile.
const (
	SecretPassword         = "password"
	SecretSSHPassword      = "ssh_password"
	SecretSSHKeyPassphrase = "ssh_key_passphrase"
)

// KeyringService keeps connection secrets in the OS keyring.
type KeyringService struct {
	ring keyring.Keyring
}

func NewKeyringService(ring keyring.Keyring) *KeyringService {
	return &KeyringService{ring: ring}
}

// OpenKeyring opens the platform keyring for serviceName. When no backend is
// usable it falls back to an in-memory ring, so secrets last for the process only.
func OpenKeyring(serviceName string) (keyring.Keyring, bool) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:              serviceName,
		KeychainTrustApplication: true,
		LibSecretCollectionName:  serviceName,
	})
	if err != nil {
		return keyring.NewArrayKeyring(nil), false
	}
	return ring, true
}

func secretKey(connection, field string) string {
	return "connection/" + connection + "/" + field
}

func (s *KeyringService) StoreSecret(connection, field, value string) error {
	if connection == "" {
		return errors.New("connection name is required")
	}
	if field == "" {
		return errors.New("secret field is required")
	}
	if value == "" {
		return s.removeSecret(secretKey(connection, field))
	}
	return s.ring.Set(keyring.Item{
		Key:         secretKey(connection, field),
		Data:        []byte(value),
		Label:       connection + " " + strings.ReplaceAll(field, "_", " "),
		Description: "openGemini Studio connection secret",
	})
}

// GetSecret returns "" when nothing is stored.
func (s *KeyringService) GetSecret(connection, field string) (string, error) {
	if connection == "" {
		return "", errors.New("connection name is required")
	}
	item, err := s.ring.Get(secretKey(connection, field))
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s of %s: %w", field, connection, err)
	}
	return string(item.Data), nil
}

// DeleteSecrets removes every secret stored for connection.
func (s *KeyringService) DeleteSecrets(connection string) error {
	for _, field := range []string{SecretPassword, SecretSSHPassword, SecretSSHKeyPassphrase} {
		if err := s.removeSecret(secretKey(connection, field)); err != nil {
			return err
		}
	}
	return nil
}

func (s *KeyringService) removeSecret(key string) error {
	err := s.ring.Remove(key)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
