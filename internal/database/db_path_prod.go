//go:build prod

package database

import (
	"log"
	"os"
	"path/filepath"
)

// GetDefaultDBPath returns the database path for production mode.
// In production, the database lives in the studio work directory under the user's home.
func GetDefaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: Failed to get user home dir: %v. Using fallback.", err)
		return "geministudio.db"
	}

	appDir := filepath.Join(homeDir, ".opengemini-studio")
	if err := os.MkdirAll(appDir, 0750); err != nil {
		log.Printf("Warning: Failed to create work dir: %v. Using fallback.", err)
		return "geministudio.db"
	}

	return filepath.Join(appDir, "geministudio.db")
}

func IsDevelopment() bool {
	return false
}
