// Package logging builds the shell's zerolog loggers and carries them through context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ConsoleTimeFormat is the short timestamp used by the console writer.
const ConsoleTimeFormat = "15:04:05.000"

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	File       *FileConfig // nil disables file output
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr

	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	}

	if cfg.File != nil {
		// Files always get JSON so they stay machine readable.
		output = zerolog.MultiLevelWriter(output, newFileWriter(*cfg.File))
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from raw config strings.
func NewFromConfigValues(level, format string, file *FileConfig) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	if cfg.Format == "console" {
		cfg.TimeFormat = ConsoleTimeFormat
	}
	cfg.File = file
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// TABSHELL_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// TABSHELL_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("TABSHELL_LOG_LEVEL"), os.Getenv("TABSHELL_LOG_FORMAT"), nil)
}
