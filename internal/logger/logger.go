// Package logger wraps charmbracelet/log behind a small leveled interface.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

// Logger defines the structured logging calls used across the generator.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

type loggerImpl struct {
	charmLogger *charmlog.Logger
}

// Config controls logger construction.
type Config struct {
	Level  string
	Output io.Writer
	JSON   bool
}

var defaultLogger atomic.Pointer[loggerImpl]

// DefaultConfig logs warnings and errors to stderr as text.
func DefaultConfig() *Config {
	return &Config{
		Level:  "warn",
		Output: os.Stderr,
	}
}

// NewLogger builds a logger from cfg. Unknown levels fall back to warn.
func NewLogger(cfg *Config) Logger {
	return newLoggerImpl(cfg)
}

func newLoggerImpl(cfg *Config) *loggerImpl {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	level, err := charmlog.ParseLevel(cfg.Level)
	if err != nil {
		level = charmlog.WarnLevel
	}
	l := charmlog.NewWithOptions(out, charmlog.Options{
		Level:  level,
		Prefix: "gen-reflect",
	})
	if cfg.JSON {
		l.SetFormatter(charmlog.JSONFormatter)
	}
	return &loggerImpl{charmLogger: l}
}

// Init replaces the process-wide logger returned by Default.
func Init(cfg *Config) error {
	if cfg != nil && cfg.Level != "" {
		if _, err := charmlog.ParseLevel(cfg.Level); err != nil {
			return fmt.Errorf("invalid log level %q", cfg.Level)
		}
	}
	defaultLogger.Store(newLoggerImpl(cfg))
	return nil
}

// Default returns the process-wide logger, creating one with DefaultConfig
// on first use.
func Default() Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	defaultLogger.CompareAndSwap(nil, newLoggerImpl(nil))
	return defaultLogger.Load()
}

func (l *loggerImpl) Debug(msg string, keyvals ...any) {
	l.charmLogger.Debug(msg, keyvals...)
}

func (l *loggerImpl) Info(msg string, keyvals ...any) {
	l.charmLogger.Info(msg, keyvals...)
}

func (l *loggerImpl) Warn(msg string, keyvals ...any) {
	l.charmLogger.Warn(msg, keyvals...)
}

func (l *loggerImpl) Error(msg string, keyvals ...any) {
	l.charmLogger.Error(msg, keyvals...)
}
