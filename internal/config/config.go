// Package config provides the studio configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	"geministudio/internal/utils"
)

const defaultWorkDirName = ".opengemini-studio"

// Config defines the process configuration read from the environment.
type Config struct {
	// WorkDir holds the log file, the device-local theme storage and, in
	// production builds, the database.
	WorkDir  string `env:"STUDIO_WORK_DIR"`
	DBPath   string `env:"STUDIO_DB_PATH"`
	LogLevel string `env:"STUDIO_LOG_LEVEL" env-default:"info"`
	Debug    bool   `env:"STUDIO_DEBUG"`

	// Headless disables the device-local storage and the window document.
	Headless bool `env:"STUDIO_HEADLESS"`

	// Locale picks the message bundle at boot; unknown codes fall back to English.
	Locale string `env:"STUDIO_LOCALE" env-default:"en"`

	// KeyringService names the OS keyring collection holding connection secrets.
	KeyringService string `env:"STUDIO_KEYRING_SERVICE" env-default:"opengemini-studio"`
}

// Load reads an optional .env file at the project root, then the environment.
func Load() (*Config, error) {
	if err := utils.LoadEnv(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}

	if cfg.WorkDir == "" {
		cfg.WorkDir = filepath.Join(utils.HomeDir(), defaultWorkDirName)
	}
	if err := utils.EnsureDir(cfg.WorkDir); err != nil {
		return nil, errors.Wrap(err, "create work directory")
	}

	return &cfg, nil
}

// ThemeStoragePath is where the device-local key/value medium lives.
func (c *Config) ThemeStoragePath() string {
	return filepath.Join(c.WorkDir, "local_storage.json")
}
