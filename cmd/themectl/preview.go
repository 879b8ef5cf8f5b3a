package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themectl/internal/palette"
	"github.com/jmylchreest/themectl/internal/theme"
)

var previewOpts struct {
	section string
	width   int
}

var previewCmd = &cobra.Command{
	Use:   "preview [name]",
	Short: "Show the colors of a theme",
	Long: `Show the colors defined by a theme as terminal swatches.

Without a name, the selected theme is shown.

Examples:
  themectl preview
  themectl preview Dracula --section script-editor`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewOpts.section, "section", "",
		"Only show colors under this top-level section")
	previewCmd.Flags().IntVar(&previewOpts.width, "width", 0,
		"Swatch width in cells (default from config)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	t := registry.Current()
	if len(args) > 0 {
		var err error
		if t, err = lookupTheme(args[0]); err != nil {
			return err
		}
	}

	data, err := theme.Source(t)
	if err != nil {
		return err
	}
	p, err := palette.Decode(t.Name(), data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", t.Name(), err)
	}

	width := previewOpts.width
	if width <= 0 {
		width = cfg.Preview.SwatchWidth
	}

	fmt.Fprint(cmd.OutOrStdout(), palette.Render(p, palette.RenderOptions{
		SwatchWidth: width,
		Section:     previewOpts.section,
	}))
	return nil
}
