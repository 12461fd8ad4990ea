package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Use a temp directory that doesn't have a config file
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Format != DefaultFormat {
		t.Errorf("Format = %q, want %q", cfg.Format, DefaultFormat)
	}

	if cfg.ArchiveBase != DefaultArchiveBase {
		t.Errorf("ArchiveBase = %q, want %q", cfg.ArchiveBase, DefaultArchiveBase)
	}

	if !cfg.Manifest.Enabled {
		t.Error("Manifest.Enabled = false, want true")
	}

	if cfg.Manifest.RetentionDays != DefaultRetentionDays {
		t.Errorf("Manifest.RetentionDays = %d, want %d", cfg.Manifest.RetentionDays, DefaultRetentionDays)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if len(cfg.Exclude) != len(DefaultExclusions) {
		t.Errorf("len(Exclude) = %d, want %d", len(cfg.Exclude), len(DefaultExclusions))
	}
}

func TestLoad_FromFile(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, ".config", "agentpack")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configContent := `
format: json
archive_base: acme-agent
exclude:
  - vendor
  - tmp
logging:
  level: debug
  console: true
manifest:
  enabled: false
  path: /custom/manifest
  retention_days: 7
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.ArchiveBase != "acme-agent" {
		t.Errorf("ArchiveBase = %q, want acme-agent", cfg.ArchiveBase)
	}
	if len(cfg.Exclude) != 2 {
		t.Errorf("len(Exclude) = %d, want 2", len(cfg.Exclude))
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if !cfg.Logging.Console {
		t.Error("Logging.Console = false, want true")
	}
	if cfg.Manifest.Enabled {
		t.Error("Manifest.Enabled = true, want false")
	}
	if cfg.Manifest.Path != "/custom/manifest" {
		t.Errorf("Manifest.Path = %q", cfg.Manifest.Path)
	}
	if cfg.Manifest.RetentionDays != 7 {
		t.Errorf("Manifest.RetentionDays = %d, want 7", cfg.Manifest.RetentionDays)
	}
}

func TestLoad_TildeExpansion(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, ".config", "agentpack")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configContent := "manifest:\n  path: ~/.agentpack-manifest\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := filepath.Join(tempDir, ".agentpack-manifest")
	if cfg.Manifest.Path != want {
		t.Errorf("Manifest.Path = %q, want %q", cfg.Manifest.Path, want)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if dir != filepath.Join("/custom/xdg", "agentpack") {
		t.Errorf("ConfigDir() = %q", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if dir != filepath.Join("/home/tester", ".config", "agentpack") {
		t.Errorf("ConfigDir() = %q", dir)
	}
}
