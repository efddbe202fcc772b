// Package logging provides config-driven categorized logging for studentnet.
// The terminal front-end owns stdout, so log lines go to a file and only when
// debug mode is enabled; otherwise every category logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, config loading
	CategoryTags     Category = "tags"     // Tag list controllers
	CategoryCarousel Category = "carousel" // Slideshow controller
	CategoryDOM      Category = "dom"      // Document parsing
	CategoryProfile  Category = "profile"  // Edit-profile form
	CategoryUI       Category = "ui"       // Terminal front-end
	CategoryWatch    Category = "watch"    // Manifest watcher
)

// Config mirrors config.LoggingConfig to avoid an import cycle.
type Config struct {
	DebugMode bool
	Level     string
	File      string
	// Categories limits output to the listed categories; empty means all.
	Categories []Category
}

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	loggers = make(map[Category]*zap.Logger)
	enabled map[Category]bool
	debug   bool
)

// Initialize builds the root logger from cfg. It may be called again to
// reconfigure; previously handed out loggers keep their old core.
func Initialize(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	loggers = make(map[Category]*zap.Logger)
	enabled = nil
	if len(cfg.Categories) > 0 {
		enabled = make(map[Category]bool, len(cfg.Categories))
		for _, c := range cfg.Categories {
			enabled[c] = true
		}
	}

	if !cfg.DebugMode {
		debug = false
		root = zap.NewNop()
		return nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	path := cfg.File
	if path == "" {
		path = "studentnet.log"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.Sampling = nil

	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	debug = true
	root = l
	root.Named(string(CategoryBoot)).Info("logging initialized",
		zap.String("file", path),
		zap.String("level", level.String()))
	return nil
}

// IsDebugMode reports whether log output is enabled.
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debug
}

// IsCategoryEnabled reports whether category produces output.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	if !debug {
		return false
	}
	return enabled == nil || enabled[category]
}

// Get returns the logger for category. Disabled categories get a no-op
// logger.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}

	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}
	l := root.Named(string(category))
	loggers[category] = l
	return l
}

// Sync flushes buffered log entries.
func Sync() {
	mu.RLock()
	l := root
	mu.RUnlock()
	_ = l.Sync()
}
