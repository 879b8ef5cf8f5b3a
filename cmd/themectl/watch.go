package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themectl/internal/adapter/output"
	"github.com/jmylchreest/themectl/internal/theme"
)

var watchOpts struct {
	format string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the theme list whenever the themes directory changes",
	Long: `Watch the themes directory and print the theme list each time theme
files are added, removed, renamed or rewritten. Runs until interrupted.

Examples:
  # Keep a launcher menu in sync
  themectl watch --format names`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOpts.format, "format", "f", "",
		"Output format (plain, names, json, yaml; default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	format := watchOpts.format
	if format == "" {
		format = cfg.List.Format
	}
	formatter, err := output.NewFormatter(output.FormatType(format), output.DefaultFormatterOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printList := func(r *theme.Registry) {
		if err := formatter.Format(out, output.Describe(r.Themes(), r.Current())); err != nil {
			logger.Warn("failed to write theme list", "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printList(registry)

	watcher := theme.NewWatcher(registry, logger)
	watcher.SetDebounce(cfg.Watch.Debounce.Duration())
	watcher.SetChangeCallback(printList)

	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("watch %s: %w", registry.Dir(), err)
	}
	defer watcher.Stop()

	<-ctx.Done()
	logger.Info("received signal, stopping watcher")
	return nil
}
