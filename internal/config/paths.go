package config

import (
	"os"
	"path/filepath"
)

// UserDir returns the per-user promoterm directory, creating nothing.
func UserDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".promoterm"), nil
}

// DefaultConfigPath is where Load looks when no --config flag is given.
func DefaultConfigPath() (string, error) {
	dir, err := UserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// EnsureDirs creates the storage and download directories.
func EnsureDirs(cfg *Config) error {
	if err := os.MkdirAll(cfg.Storage.Dir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(cfg.Downloads.Dir, 0755)
}
