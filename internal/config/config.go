package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Backend   BackendConfig   `yaml:"backend"`
	Storage   StorageConfig   `yaml:"storage"`
	Downloads DownloadsConfig `yaml:"downloads"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type BackendConfig struct {
	// BaseURL is the root of the agent service, e.g. http://localhost:7071/api
	BaseURL string `yaml:"base_url"`
}

type StorageConfig struct {
	// Dir holds the local KV file and the transcript archive database.
	Dir string `yaml:"dir"`
}

type DownloadsConfig struct {
	// Dir receives exported spreadsheets.
	Dir string `yaml:"dir"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from a file. A missing file is not an error: the
// tool must run with zero setup, so defaults are applied either way.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Override with environment variables if present
	if url := os.Getenv("PROMOTERM_BACKEND_URL"); url != "" {
		cfg.Backend.BaseURL = url
	}
	if level := os.Getenv("PROMOTERM_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:7071/api"
	}
	if c.Storage.Dir == "" {
		dir, err := UserDir()
		if err != nil {
			return err
		}
		c.Storage.Dir = dir
	}
	if c.Downloads.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.Downloads.Dir = filepath.Join(home, "Downloads")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Backend.BaseURL, "http://") && !strings.HasPrefix(c.Backend.BaseURL, "https://") {
		return fmt.Errorf("backend.base_url must be an http(s) URL, got %q", c.Backend.BaseURL)
	}
	if c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir is required")
	}
	if c.Downloads.Dir == "" {
		return fmt.Errorf("downloads.dir is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error")
	}
	return nil
}

// LocalStatePath is the JSON file backing the key-value store.
func (c *Config) LocalStatePath() string {
	return filepath.Join(c.Storage.Dir, "local.json")
}

// ArchivePath is the sqlite database holding finished transcripts.
func (c *Config) ArchivePath() string {
	return filepath.Join(c.Storage.Dir, "archive.db")
}
