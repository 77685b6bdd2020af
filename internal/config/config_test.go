package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.BaseURL != "http://localhost:7071/api" {
		t.Errorf("base_url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
	if cfg.Storage.Dir == "" || cfg.Downloads.Dir == "" {
		t.Error("expected default directories")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `backend:
  base_url: https://promo.example.com/api
storage:
  dir: /tmp/promoterm-test
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.BaseURL != "https://promo.example.com/api" {
		t.Errorf("base_url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Storage.Dir != "/tmp/promoterm-test" {
		t.Errorf("storage.dir = %q", cfg.Storage.Dir)
	}
	if cfg.LocalStatePath() != filepath.Join("/tmp/promoterm-test", "local.json") {
		t.Errorf("local state path = %q", cfg.LocalStatePath())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend:\n  base_url: http://file-value\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PROMOTERM_BACKEND_URL", "http://env-value")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.BaseURL != "http://env-value" {
		t.Errorf("base_url = %q, want env override", cfg.Backend.BaseURL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend:\n  base_url: ftp://nope\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for non-http base_url")
	}

	if err := os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown log level")
	}
}
