package utils

import "os"

func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDir creates path (and parents) if it does not exist yet.
func EnsureDir(path string) error {
	if DirectoryExists(path) {
		return nil
	}
	return os.MkdirAll(path, 0750)
}

// HomeDir returns the user's home, or the current directory when unknown.
func HomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./"
	}
	return homeDir
}
