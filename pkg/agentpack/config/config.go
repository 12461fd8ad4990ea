package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Path    string `mapstructure:"path"`
	Console bool   `mapstructure:"console"`
}

// ManifestConfig configures the operation manifest.
type ManifestConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// Config represents the application configuration.
type Config struct {
	// Format selects the scan output format (table, plain, json, yaml).
	Format string `mapstructure:"format"`

	// ArchiveBase is the default base name for built archives.
	ArchiveBase string `mapstructure:"archive_base"`

	// Exclude contains patterns omitted during directory collection.
	Exclude []string `mapstructure:"exclude"`

	Logging  LoggingConfig  `mapstructure:"logging"`
	Manifest ManifestConfig `mapstructure:"manifest"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/agentpack/config.yaml
//   - $HOME/.config/agentpack/config.yaml
//
// Environment variables are prefixed with AGENTPACK_
// (e.g. AGENTPACK_FORMAT).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "agentpack"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "agentpack"))

	v.SetEnvPrefix("AGENTPACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("format", DefaultFormat)
	v.SetDefault("archive_base", DefaultArchiveBase)
	v.SetDefault("exclude", DefaultExclusions)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", "")
	v.SetDefault("logging.console", false)
	v.SetDefault("manifest.enabled", true)
	v.SetDefault("manifest.retention_days", DefaultRetentionDays)
	v.SetDefault("manifest.path", filepath.Join(homeDir, ".config", "agentpack", ".manifest"))

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in manifest path if present
	if strings.HasPrefix(cfg.Manifest.Path, "~") {
		cfg.Manifest.Path = filepath.Join(homeDir, cfg.Manifest.Path[1:])
	}

	return &cfg, nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "agentpack"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "agentpack"), nil
}

// ManifestDir returns the manifest directory path.
func ManifestDir() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ".manifest"), nil
}

// WriteDefault writes a default config file if one doesn't exist.
func WriteDefault() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		// Config file exists, do nothing
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	manifestDir, err := ManifestDir()
	if err != nil {
		return err
	}

	defaultConfig := fmt.Sprintf(`# Agentpack Configuration

# Output format for scan results: table, plain, json, yaml
format: %s

# Base name for built archives when no agent name is given
archive_base: %s

# Patterns to exclude from directory collection
exclude:
  - .git
  - node_modules
  - __pycache__

# Logging configuration
logging:
  level: info
  path: ""
  console: false

# Operation manifest
manifest:
  enabled: true
  path: %s
  retention_days: %d
`, DefaultFormat, DefaultArchiveBase, manifestDir, DefaultRetentionDays)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
