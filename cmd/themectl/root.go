// Package main provides the CLI entrypoint for themectl.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themectl/internal/config"
	"github.com/jmylchreest/themectl/internal/prefs"
	"github.com/jmylchreest/themectl/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		themesDir  string
		prefsPath  string
	}
	logger *slog.Logger

	// registry is the theme registry for the managed directory
	registry  *theme.Registry
	prefsFile *prefs.File
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "themectl",
	Short: "Manage AGS editor color themes",
	Long: `themectl manages the color themes of the AGS editor.

Themes are JSON files in a per-user themes directory. The selected theme is
stored in the editor preferences file and is picked up the next time the
editor starts.

Running themectl without a subcommand launches the interactive picker.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if globalOpts.themesDir != "" {
			cfg.Themes.Dir = globalOpts.themesDir
		}
		if globalOpts.prefsPath != "" {
			cfg.Preferences.Path = globalOpts.prefsPath
		}

		themesDir, err := cfg.ResolvedThemesDir()
		if err != nil {
			return err
		}
		prefsPath, err := cfg.ResolvedPreferencesPath()
		if err != nil {
			return err
		}

		prefsFile, err = prefs.Open(prefsPath)
		if err != nil {
			return fmt.Errorf("failed to open preferences: %w", err)
		}

		registry, err = theme.NewRegistry(themesDir, prefsFile,
			theme.WithLogger(logger),
			theme.WithExtension(cfg.Themes.Extension),
		)
		if err != nil {
			return fmt.Errorf("failed to load themes: %w", err)
		}
		return nil
	},
	// Default to the picker when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPick(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/themectl/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.themesDir, "themes-dir", "",
		"Themes directory (default: <local-app-data>/AGS/Themes)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.prefsPath, "prefs", "",
		"Preferences file (default: <local-app-data>/AGS/preferences.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
