// Package logging provides categorised structured logging for pazar.
// Each category is a named child of one process-wide zap logger, which is
// built from config.LoggingConfig at startup. Until then, and whenever
// logging is disabled, every category logs to a no-op logger.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pazar/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config loading
	CategoryDataset Category = "dataset" // Dataset parsing and projection
	CategoryQuery   Category = "query"   // Filter/sort/paginate transitions
	CategoryUI      Category = "ui"      // Interactive table events
)

var (
	root   = zap.NewNop()
	rootMu sync.RWMutex
)

// Build constructs a zap logger from the logging config.
func Build(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Format != "" {
		zc.Encoding = cfg.Format
	}
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Initialize installs the process logger. Interactive sessions without a
// log file get a no-op logger so nothing is written over the terminal UI.
func Initialize(cfg config.LoggingConfig, interactive bool) error {
	if !cfg.Enabled(interactive) {
		SetLogger(zap.NewNop())
		return nil
	}
	logger, err := Build(cfg)
	if err != nil {
		return err
	}
	SetLogger(logger)

	Get(CategoryBoot).Debug("logging initialized",
		zap.String("level", cfg.Level),
		zap.String("format", cfg.Format),
		zap.String("file", cfg.File),
		zap.Bool("interactive", interactive),
	)
	return nil
}

// SetLogger replaces the process logger and returns a func restoring the
// previous one. A nil logger installs a no-op logger.
func SetLogger(l *zap.Logger) (restore func()) {
	if l == nil {
		l = zap.NewNop()
	}
	rootMu.Lock()
	prev := root
	root = l
	rootMu.Unlock()

	return func() {
		rootMu.Lock()
		root = prev
		rootMu.Unlock()
	}
}

// L returns the process logger.
func L() *zap.Logger {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return root
}

// Get returns the logger for a category.
func Get(category Category) *zap.Logger {
	return L().Named(string(category))
}

// Sync flushes buffered entries. Errors from syncing a terminal are common
// and not actionable, so callers usually discard the result.
func Sync() error {
	return L().Sync()
}

// Boot logs a formatted info message in the boot category.
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Sugar().Infof(format, args...)
}

// Dataset logs a formatted info message in the dataset category.
func Dataset(format string, args ...interface{}) {
	Get(CategoryDataset).Sugar().Infof(format, args...)
}

// QueryDebug logs a formatted debug message in the query category.
func QueryDebug(format string, args ...interface{}) {
	Get(CategoryQuery).Sugar().Debugf(format, args...)
}
