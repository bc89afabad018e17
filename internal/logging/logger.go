package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a zerolog logger writing to w.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	output := w
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    w != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield fallback.
func ParseLevel(level string, fallback zerolog.Level) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return fallback
	}
}

// NewFromConfigValues builds a stderr logger from plain config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	return New(ConfigFromValues(level, format))
}

// ConfigFromValues builds a Config from plain strings, keeping defaults for
// anything it does not recognize.
func ConfigFromValues(level, format string) Config {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level, cfg.Level)
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return cfg
}

// NewFromEnv creates a logger based on environment variables
// TYPEAHEAD_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// TYPEAHEAD_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromEnv(DefaultConfig()))
}

// ConfigFromEnv overlays the TYPEAHEAD_LOG_* variables on base.
func ConfigFromEnv(base Config) Config {
	if level := os.Getenv("TYPEAHEAD_LOG_LEVEL"); level != "" {
		base.Level = ParseLevel(level, base.Level)
	}
	if format := os.Getenv("TYPEAHEAD_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			base.Format = format
		}
	}
	return base
}
