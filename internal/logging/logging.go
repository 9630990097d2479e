// Package logging provides leveled structured logging for notekit
// diagnostics. User-facing feedback goes through internal/report; this
// logger carries operational detail such as cleanup warnings and retry
// decisions.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// Logger is the structured logging interface used across notekit.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...any)
	// Info logs an informational message.
	Info(msg string, args ...any)
	// Warn logs a warning message.
	Warn(msg string, args ...any)
	// Error logs an error message.
	Error(msg string, args ...any)
	// With returns a logger with additional key-value pairs.
	With(args ...any) Logger
}

// Config controls where and how verbosely the logger writes.
type Config struct {
	// Level is one of debug, info, warn, error. Defaults to warn.
	Level string
	// File is an optional log file path; empty means stderr.
	File string
}

type loggerImpl struct {
	clogger *clog.Logger
}

// New initializes a Logger from cfg. When a log file is configured it is
// opened append-only with JSON formatting; stderr output stays as text.
func New(cfg Config) (Logger, error) {
	out := os.Stderr
	jsonFormat := false
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		jsonFormat = true
	}

	clogger := clog.NewWithOptions(out, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           parseLevel(cfg.Level),
	})
	if jsonFormat {
		clogger.SetFormatter(clog.JSONFormatter)
	}

	return &loggerImpl{clogger: clogger}, nil
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "info":
		return clog.InfoLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.WarnLevel
	}
}

func (l *loggerImpl) Debug(msg string, args ...any) { l.clogger.Debug(msg, args...) }
func (l *loggerImpl) Info(msg string, args ...any)  { l.clogger.Info(msg, args...) }
func (l *loggerImpl) Warn(msg string, args ...any)  { l.clogger.Warn(msg, args...) }
func (l *loggerImpl) Error(msg string, args ...any) { l.clogger.Error(msg, args...) }

func (l *loggerImpl) With(args ...any) Logger {
	return &loggerImpl{clogger: l.clogger.With(args...)}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func (n nopLogger) With(...any) Logger { return n }
