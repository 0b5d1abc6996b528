// Package logging configures zerolog for the CLI.
//
// Console output goes to stderr so command results on stdout stay clean and
// pipeable. When a log file is configured, entries are written there as JSON
// and the file is rotated with lumberjack.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Format names accepted in Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Environment variables the CLI consults before falling back to the
// configuration file.
const (
	EnvLogLevel  = "DATASHEET_LOG_LEVEL"
	EnvLogFormat = "DATASHEET_LOG_FORMAT"
)

// Rotation defaults applied when the corresponding Config field is zero.
const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Invalid or empty
	// values fall back to info.
	Level string

	// Format selects console or JSON output for the stderr writer.
	Format string

	// File, when non-empty, adds a rotated JSON log file alongside stderr.
	File string

	// MaxSizeMB, MaxBackups and MaxAgeDays tune file rotation.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Caller adds file:line caller information to each entry.
	Caller bool
}

// New builds a logger from cfg. It never fails: bad levels degrade to info
// and an unwritable log file simply leaves stderr as the only sink
// (lumberjack defers file creation until the first write).
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writers := []io.Writer{consoleWriter(cfg.Format)}

	if cfg.File != "" {
		writers = append(writers, rotatingWriter(cfg))
	}

	logCtx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	return logCtx.Logger()
}

// consoleWriter returns the stderr writer for the requested format.
func consoleWriter(format string) io.Writer {
	if format == FormatJSON {
		return os.Stderr
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// rotatingWriter returns a lumberjack writer for cfg.File.
func rotatingWriter(cfg Config) io.Writer {
	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := cfg.MaxBackups
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}
	maxAge := cfg.MaxAgeDays
	if maxAge <= 0 {
		maxAge = defaultMaxAgeDays
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}
}

// ComponentLogger returns a child logger tagged with a component field.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a default info-level
// console logger when none was attached. Attach loggers with
// zerolog's Logger.WithContext.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if logger := zerolog.Ctx(ctx); logger.GetLevel() != zerolog.Disabled {
			return *logger
		}
	}
	return New(Config{})
}
