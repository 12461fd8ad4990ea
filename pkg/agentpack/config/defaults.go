// Package config provides configuration management for agentpack.
package config

// Default configuration values for agentpack.
const (
	// DefaultFormat is the default output format for scan results.
	DefaultFormat = "table"

	// DefaultArchiveBase is the base name used for archives when no
	// agent name is given.
	DefaultArchiveBase = "bundle"

	// DefaultConfigDir is the default configuration directory path.
	DefaultConfigDir = "~/.config/agentpack"

	// DefaultRetentionDays is the default number of days to retain
	// manifest entries.
	DefaultRetentionDays = 30
)

// DefaultExclusions contains path patterns excluded from directory
// collection by default. These hold dependency trees and VCS metadata,
// never agent components.
var DefaultExclusions = []string{
	".git",
	"node_modules",
	"__pycache__",
	"dist",
	"build",
	".venv",
}
