package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/themectl/internal/tui"
)

var pickOpts struct {
	watch bool
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a theme interactively",
	Long: `Launch the interactive theme picker.

Key bindings:
  j/k, ↑/↓    Navigate list
  /           Filter by name
  enter       Use the highlighted theme
  p, space    Preview colors
  y           Copy theme file path to clipboard
  r           Rescan the themes directory
  ?           Show help
  q           Quit`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().BoolVarP(&pickOpts.watch, "watch", "w", false,
		"Reload the list when theme files change")
}

func runPick(cmd *cobra.Command, args []string) error {
	return tui.Run(registry, tui.RunOptions{
		SwatchWidth:      cfg.Preview.SwatchWidth,
		ClipboardCommand: cfg.Clipboard.Command,
		Watch:            pickOpts.watch,
		Debounce:         cfg.Watch.Debounce.Duration(),
	})
}
