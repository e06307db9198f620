package config

import (
	"os"
	"path/filepath"
)

const (
	AppName        = "quickdate"
	ConfigFileName = "config.yaml"
)

// DataDir returns the path to the quickdate data directory (~/.quickdate/)
// Creates the directory if it doesn't exist
// Can be overridden with QUICKDATE_DATA_DIR environment variable (primarily for testing)
func DataDir() (string, error) {
	if dataDir := os.Getenv("QUICKDATE_DATA_DIR"); dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// ConfigPath returns the path to the config file (~/.quickdate/config.yaml)
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, ConfigFileName), nil
}
