package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all studentnet configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Tag input widgets on the edit-profile page
	Tags TagsConfig `yaml:"tags"`

	// Photo slideshow
	Slideshow SlideshowConfig `yaml:"slideshow"`

	// Terminal front-end
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// TagsConfig configures the tag input widgets.
type TagsConfig struct {
	// Categories are rendered in order, one widget each.
	Categories []TagCategory `yaml:"categories"`

	// MaxLength is the longest tag accepted on submit.
	MaxLength int `yaml:"max_length"`
}

// TagCategory binds one tag widget to the page.
type TagCategory struct {
	Name          string `yaml:"name"`           // hidden field name, e.g. hobbies
	InputName     string `yaml:"input_name"`     // name of the raw text input
	ContainerName string `yaml:"container_name"` // name of the chip container
	Style         string `yaml:"style"`          // chip colour token
	Placeholder   string `yaml:"placeholder"`
}

// SlideshowConfig configures the photo slideshow.
type SlideshowConfig struct {
	Manifest string `yaml:"manifest"`
	Watch    bool   `yaml:"watch"`
	Debounce string `yaml:"debounce"`
}

// UIConfig configures the terminal front-end.
type UIConfig struct {
	DarkMode bool `yaml:"dark_mode"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"` // debug, info, warn, error
	File      string `yaml:"file"`

	// Categories limits output to the listed categories (boot, tags,
	// carousel, dom, profile, ui, watch); empty logs all of them.
	Categories []string `yaml:"categories,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "studentnet",
		Version: "1.0.0",

		Tags: TagsConfig{
			Categories: []TagCategory{
				{
					Name:          "hobbies",
					InputName:     "hobbies_input",
					ContainerName: "hobby-div",
					Style:         "teal",
					Placeholder:   "Add hobbies, separated by commas",
				},
				{
					Name:          "interests",
					InputName:     "interests_input",
					ContainerName: "interest-div",
					Style:         "purple",
					Placeholder:   "Add interests, separated by commas",
				},
			},
			MaxLength: 24,
		},

		Slideshow: SlideshowConfig{
			Manifest: "slides.yaml",
			Watch:    false,
			Debounce: "250ms",
		},

		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
			File:      "studentnet.log",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("STUDENTNET_DARK_MODE"); v != "" {
		if dark, err := strconv.ParseBool(v); err == nil {
			c.UI.DarkMode = dark
		}
	}
	if level := os.Getenv("STUDENTNET_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
		c.Logging.DebugMode = true
	}
	if path := os.Getenv("STUDENTNET_SLIDES"); path != "" {
		c.Slideshow.Manifest = path
	}
}

// GetSlideshowDebounce returns the manifest reload debounce as a duration.
func (c *Config) GetSlideshowDebounce() time.Duration {
	d, err := time.ParseDuration(c.Slideshow.Debounce)
	if err != nil || d <= 0 {
		return 250 * time.Millisecond
	}
	return d
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogCategories lists the accepted logging.categories entries.
var ValidLogCategories = []string{"boot", "tags", "carousel", "dom", "profile", "ui", "watch"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Tags.Categories) == 0 {
		return fmt.Errorf("%w: at least one tag category is required", ErrInvalidConfig)
	}
	if c.Tags.MaxLength <= 0 {
		return fmt.Errorf("%w: tags.max_length must be positive, got %d", ErrInvalidConfig, c.Tags.MaxLength)
	}

	seen := make(map[string]bool)
	for i, cat := range c.Tags.Categories {
		if cat.Name == "" || cat.InputName == "" || cat.ContainerName == "" {
			return fmt.Errorf("%w: tag category %d needs name, input_name and container_name", ErrInvalidConfig, i+1)
		}
		if seen[cat.Name] {
			return fmt.Errorf("%w: duplicate tag category %q", ErrInvalidConfig, cat.Name)
		}
		seen[cat.Name] = true
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("%w: invalid log level: %s (valid: %v)", ErrInvalidConfig, c.Logging.Level, ValidLogLevels)
	}

	for _, cat := range c.Logging.Categories {
		if !slices.Contains(ValidLogCategories, cat) {
			return fmt.Errorf("%w: unknown log category: %s (valid: %v)", ErrInvalidConfig, cat, ValidLogCategories)
		}
	}

	return nil
}

// Category returns the tag category with the given field name.
func (c *Config) Category(name string) (TagCategory, bool) {
	for _, cat := range c.Tags.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return TagCategory{}, false
}
