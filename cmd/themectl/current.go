package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themectl/internal/theme"
)

var currentOpts struct {
	path bool
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the selected theme",
	Long: `Print the name of the selected theme.

If the preferences name a theme that is no longer in the themes directory,
the built-in Default theme is reported.`,
	Args: cobra.NoArgs,
	RunE: runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)

	currentCmd.Flags().BoolVar(&currentOpts.path, "path", false,
		"Print the theme file path instead (nothing for the built-in theme)")
}

func runCurrent(cmd *cobra.Command, args []string) error {
	current := registry.Current()
	out := cmd.OutOrStdout()

	if !currentOpts.path {
		fmt.Fprintln(out, current.Name())
		return nil
	}

	registry.Apply(func(t *theme.Theme) {
		fmt.Fprintln(out, t.Path())
	})
	return nil
}
