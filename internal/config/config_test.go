package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "studentnet" {
		t.Errorf("expected Name=studentnet, got %s", cfg.Name)
	}
	if cfg.Tags.MaxLength != 24 {
		t.Errorf("expected MaxLength=24, got %d", cfg.Tags.MaxLength)
	}
	if len(cfg.Tags.Categories) != 2 {
		t.Fatalf("expected 2 tag categories, got %d", len(cfg.Tags.Categories))
	}

	hobbies, ok := cfg.Category("hobbies")
	require.True(t, ok)
	assert.Equal(t, "hobbies_input", hobbies.InputName)
	assert.Equal(t, "hobby-div", hobbies.ContainerName)
	assert.Equal(t, "teal", hobbies.Style)

	interests, ok := cfg.Category("interests")
	require.True(t, ok)
	assert.Equal(t, "purple", interests.Style)

	_, ok = cfg.Category("clubs")
	assert.False(t, ok)

	assert.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("STUDENTNET_DARK_MODE", "")
	t.Setenv("STUDENTNET_LOG_LEVEL", "")
	t.Setenv("STUDENTNET_SLIDES", "")

	path := filepath.Join(t.TempDir(), "nested", "studentnet.yaml")

	cfg := DefaultConfig()
	cfg.Tags.MaxLength = 32
	cfg.Tags.Categories = []TagCategory{
		{Name: "clubs", InputName: "clubs_input", ContainerName: "club-div", Style: "olive"},
	}
	cfg.UI.DarkMode = true
	cfg.Logging.Categories = []string{"tags", "dom"}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32, loaded.Tags.MaxLength)
	assert.Equal(t, cfg.Tags.Categories, loaded.Tags.Categories)
	assert.True(t, loaded.UI.DarkMode)
	assert.Equal(t, []string{"tags", "dom"}, loaded.Logging.Categories)
	assert.NoError(t, loaded.Validate())
}

func TestLoad_LoggingCategories(t *testing.T) {
	t.Setenv("STUDENTNET_LOG_LEVEL", "")
	t.Setenv("STUDENTNET_SLIDES", "")

	path := filepath.Join(t.TempDir(), "studentnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  debug_mode: true\n  categories: [tags, watch]\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, []string{"tags", "watch"}, cfg.Logging.Categories)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Nil(t, DefaultConfig().Logging.Categories)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("STUDENTNET_SLIDES", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Tags, cfg.Tags)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("STUDENTNET_LOG_LEVEL", "")
	t.Setenv("STUDENTNET_SLIDES", "")

	path := filepath.Join(t.TempDir(), "studentnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slideshow:\n  watch: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Slideshow.Watch)
	assert.Equal(t, "slides.yaml", cfg.Slideshow.Manifest)
	assert.Len(t, cfg.Tags.Categories, 2)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studentnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tags: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("dark mode", func(t *testing.T) {
		t.Setenv("STUDENTNET_DARK_MODE", "1")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.UI.DarkMode)
	})

	t.Run("unparseable dark mode ignored", func(t *testing.T) {
		t.Setenv("STUDENTNET_DARK_MODE", "sometimes")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.False(t, cfg.UI.DarkMode)
	})

	t.Run("log level enables debug mode", func(t *testing.T) {
		t.Setenv("STUDENTNET_LOG_LEVEL", "DEBUG")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("slides path", func(t *testing.T) {
		t.Setenv("STUDENTNET_SLIDES", "/tmp/other.yaml")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "/tmp/other.yaml", cfg.Slideshow.Manifest)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no categories", mutate: func(c *Config) { c.Tags.Categories = nil }},
		{name: "zero max length", mutate: func(c *Config) { c.Tags.MaxLength = 0 }},
		{name: "missing input name", mutate: func(c *Config) { c.Tags.Categories[0].InputName = "" }},
		{name: "duplicate category", mutate: func(c *Config) { c.Tags.Categories[1].Name = "hobbies" }},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }},
		{name: "unknown log category", mutate: func(c *Config) { c.Logging.Categories = []string{"tags", "network"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestGetSlideshowDebounce(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 250*time.Millisecond, cfg.GetSlideshowDebounce())

	cfg.Slideshow.Debounce = "1s"
	assert.Equal(t, time.Second, cfg.GetSlideshowDebounce())

	cfg.Slideshow.Debounce = "soon"
	assert.Equal(t, 250*time.Millisecond, cfg.GetSlideshowDebounce())
}
