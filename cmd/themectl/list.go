package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/themectl/internal/adapter/output"
)

var listOpts struct {
	format   string
	showPath bool
	noMeta   bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long: `List the built-in Default theme followed by every theme file in the
themes directory, in file name order. The selected theme is marked.

Examples:
  # Human readable listing
  themectl list

  # One name per line, for fuzzel/rofi
  themectl list --format names | fuzzel -d | xargs themectl set

  # Machine readable
  themectl list --format json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOpts.format, "format", "f", "",
		"Output format (plain, names, json, yaml; default from config)")
	listCmd.Flags().BoolVar(&listOpts.showPath, "path", false,
		"Show theme file paths (plain only)")
	listCmd.Flags().BoolVar(&listOpts.noMeta, "no-meta", false,
		"Hide file size and modification time (plain only)")
}

func runList(cmd *cobra.Command, args []string) error {
	format := listOpts.format
	if format == "" {
		format = cfg.List.Format
	}

	opts := output.DefaultFormatterOptions()
	opts.ShowPath = listOpts.showPath
	opts.ShowMeta = !listOpts.noMeta

	formatter, err := output.NewFormatter(output.FormatType(format), opts)
	if err != nil {
		return err
	}

	infos := output.Describe(registry.Themes(), registry.Current())
	return formatter.Format(cmd.OutOrStdout(), infos)
}
