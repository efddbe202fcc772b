package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"studentnet/internal/config"
	"studentnet/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	logFile    string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger

	// Appended to every tea.NewProgram call; tests use it to detach the terminal.
	programOptions []tea.ProgramOption
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "studentnet",
	Short: "studentnet - profile tags and photo slideshow in the terminal",
	Long: `studentnet runs the student profile widgets in a terminal.

The edit-profile page collects hobbies and interests as tags: type a comma to
commit what you typed, backspace on an empty line removes the last tag. The
slideshow pages through the photos listed in a YAML manifest.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.DebugMode = true
			cfg.Logging.Level = "debug"
		}
		if logFile != "" {
			cfg.Logging.File = logFile
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := logging.Initialize(logging.Config{
			DebugMode:  cfg.Logging.DebugMode,
			Level:      cfg.Logging.Level,
			File:       cfg.Logging.File,
			Categories: logCategories(cfg.Logging.Categories),
		}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logging.Get(logging.CategoryBoot)
		logger.Debug("config loaded", zap.String("path", configPath), zap.String("command", cmd.Name()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "studentnet.yaml", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(profileCmd, slideshowCmd, normalizeCmd)
}

// logCategories converts configured category names for logging.Initialize.
func logCategories(names []string) []logging.Category {
	var cats []logging.Category
	for _, n := range names {
		cats = append(cats, logging.Category(n))
	}
	return cats
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
