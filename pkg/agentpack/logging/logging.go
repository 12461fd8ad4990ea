// Package logging provides component-scoped structured logging for
// agentpack, backed by charmbracelet/log.
//
// Loggers are silent until Init is called, so library packages can log
// unconditionally without forcing output on embedders:
//
//	logger := logging.Get("scanner")
//	logger.Info("scan complete", "records", n)
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// parseLevel maps a level string onto a charmbracelet/log level.
func parseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the log level (debug, info, warn, error).
	Level string

	// Path is the log file path. Empty uses DefaultLogPath().
	// "-" disables the file target entirely.
	Path string

	// Console, when true, mirrors log output to stderr with short
	// timestamps. Leave off when a TUI owns the terminal.
	Console bool
}

// state holds the global logging state.
type state struct {
	mu          sync.RWMutex
	initialized bool
	file        *os.File
	level       log.Level
	console     bool
	loggers     map[string]*log.Logger
}

var globalState = &state{
	loggers: make(map[string]*log.Logger),
}

// Init initializes the logging system. It must be called before log output
// is wanted; until then all loggers write to io.Discard.
func Init(cfg Config) error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	if globalState.file != nil {
		_ = globalState.file.Close()
		globalState.file = nil
	}

	if cfg.Path != "-" {
		path := cfg.Path
		if path == "" {
			path = DefaultLogPath()
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		globalState.file = f
	}

	globalState.level = level
	globalState.console = cfg.Console
	globalState.initialized = true

	// Rebuild any loggers handed out before Init.
	for component := range globalState.loggers {
		globalState.loggers[component] = createLogger(component)
	}

	return nil
}

// Get returns a logger for the given component. The same component always
// gets the same logger instance.
func Get(component string) *log.Logger {
	globalState.mu.RLock()
	if logger, ok := globalState.loggers[component]; ok {
		globalState.mu.RUnlock()
		return logger
	}
	globalState.mu.RUnlock()

	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if logger, ok := globalState.loggers[component]; ok {
		return logger
	}
	logger := createLogger(component)
	globalState.loggers[component] = logger
	return logger
}

// createLogger builds a logger for a component.
// Must be called with globalState.mu held.
func createLogger(component string) *log.Logger {
	if !globalState.initialized {
		return log.NewWithOptions(io.Discard, log.Options{Prefix: component})
	}

	var w io.Writer = io.Discard
	switch {
	case globalState.file != nil && globalState.console:
		w = io.MultiWriter(globalState.file, os.Stderr)
	case globalState.file != nil:
		w = globalState.file
	case globalState.console:
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		Level:           globalState.level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          component,
	})
}

// Close flushes and closes the log file. Call on application exit.
func Close() error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if globalState.file != nil {
		if err := globalState.file.Close(); err != nil {
			return fmt.Errorf("closing log file: %w", err)
		}
		globalState.file = nil
	}
	globalState.initialized = false
	globalState.loggers = make(map[string]*log.Logger)
	return nil
}

// DefaultLogPath returns the default log file path under the XDG state dir.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "agentpack", "agentpack.log")
}
