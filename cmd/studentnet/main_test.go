package main

import (
	"bytes"
	"context"
	"io"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"studentnet/internal/config"
	"studentnet/internal/logging"
	"studentnet/internal/profile"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cfg = config.DefaultConfig()
	logger = zap.NewNop()

	prefillHobbies, prefillInterests = nil, nil
	profileNoTUI, slideshowNoTUI, slideshowWatch = true, true, false
	t.Cleanup(func() {
		prefillHobbies, prefillInterests = nil, nil
		profileNoTUI, slideshowNoTUI = false, false
	})

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestRunProfile_PrintsPrefilledValues(t *testing.T) {
	cmd, out := setupTestCommand(t)
	prefillHobbies = []string{"chess", "rock climbing"}
	prefillInterests = []string{"Machine Learning"}

	require.NoError(t, runProfile(cmd, nil))
	assert.Equal(t, "hobbies=chess%2Crock-climbing&interests=Machine-Learning\n", out.String())
}

func TestRunProfile_EmptyForm(t *testing.T) {
	cmd, out := setupTestCommand(t)

	require.NoError(t, runProfile(cmd, nil))
	assert.Equal(t, "hobbies=&interests=\n", out.String())
}

func TestRunProfile_RejectsLongTags(t *testing.T) {
	cmd, out := setupTestCommand(t)
	prefillInterests = []string{strings.Repeat("z", 30)}

	err := runProfile(cmd, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, profile.ErrTagTooLong))
	assert.Contains(t, out.String(), "Interests must not exceed 24 characters")
}

func TestRunSlideshow_PrintsEverySlide(t *testing.T) {
	cmd, out := setupTestCommand(t)
	manifest := filepath.Join(t.TempDir(), "slides.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`slides:
  - image: beach.jpg
    caption: Beach day
  - image: campus.jpg
`), 0644))

	require.NoError(t, runSlideshow(cmd, []string{manifest}))
	assert.Equal(t, "1 / 2  beach.jpg  Beach day\n2 / 2  campus.jpg\n", out.String())
}

func TestRunSlideshow_MissingManifest(t *testing.T) {
	cmd, _ := setupTestCommand(t)
	cfg.Slideshow.Manifest = filepath.Join(t.TempDir(), "missing.yaml")

	assert.Error(t, runSlideshow(cmd, nil))
}

func TestRunNormalize(t *testing.T) {
	cmd, out := setupTestCommand(t)

	require.NoError(t, runNormalize(cmd, []string{"rock climbing,", "C++, !!"}))
	assert.Equal(t, "rock-climbing\nC\nfield: rock-climbing,C\n", out.String())

	out.Reset()
	require.NoError(t, runNormalize(cmd, []string{",,,"}))
	assert.Equal(t, "No tags.\n", out.String())
}

func TestRootCommand_LoadsConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STUDENTNET_LOG_LEVEL", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", filepath.Join(dir, "none.yaml"), "normalize", "a,b"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "a\nb\nfield: a,b\n", out.String())
	assert.Equal(t, 24, cfg.Tags.MaxLength)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "studentnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))
	t.Setenv("STUDENTNET_LOG_LEVEL", "")

	rootCmd.SetArgs([]string{"--config", path, "normalize", "a"})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetErr(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestLogCategories(t *testing.T) {
	assert.Nil(t, logCategories(nil))
	assert.Equal(t, []logging.Category{logging.CategoryTags, logging.CategoryWatch},
		logCategories([]string{"tags", "watch"}))
}

func TestRootCommand_CategoryFilterFromConfig(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "studentnet.log")
	path := filepath.Join(dir, "studentnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  debug_mode: true\n  level: debug\n  file: "+logPath+"\n  categories: [tags]\n"), 0644))
	t.Setenv("STUDENTNET_LOG_LEVEL", "")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", path, "normalize", "a"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		_ = logging.Initialize(logging.Config{})
	})

	require.NoError(t, rootCmd.Execute())
	assert.True(t, logging.IsCategoryEnabled(logging.CategoryTags))
	assert.False(t, logging.IsCategoryEnabled(logging.CategoryBoot))
}

func detachTerminal(t *testing.T) {
	t.Helper()
	programOptions = []tea.ProgramOption{tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutSignalHandler()}
	t.Cleanup(func() { programOptions = nil })
}

func TestRunSlideshow_StopsWithCommandContext(t *testing.T) {
	cmd, _ := setupTestCommand(t)
	slideshowNoTUI = false
	detachTerminal(t)

	manifest := filepath.Join(t.TempDir(), "slides.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("slides:\n  - image: a.jpg\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd.SetContext(ctx)

	err := runSlideshow(cmd, []string{manifest})
	require.Error(t, err)
	assert.True(t, errors.Is(err, tea.ErrProgramKilled))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunProfile_StopsWithCommandContext(t *testing.T) {
	cmd, _ := setupTestCommand(t)
	profileNoTUI = false
	detachTerminal(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd.SetContext(ctx)

	err := runProfile(cmd, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tea.ErrProgramKilled))
}
