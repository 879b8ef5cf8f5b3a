package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themectl/internal/theme"
)

var setCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Select a theme",
	Long: `Select a theme by name and save the preferences.

Theme names are case-sensitive. "Default" selects the built-in theme. The
whole preferences file is rewritten, so any other pending preference change
is saved as well.

Examples:
  themectl set Dracula
  themectl set Default`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	t, err := lookupTheme(args[0])
	if err != nil {
		return err
	}

	if err := registry.SetCurrent(t); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Using %s\n", t.Name())
	return nil
}

// lookupTheme finds a theme by name, suggesting close matches when there is none.
func lookupTheme(name string) (*theme.Theme, error) {
	if t, ok := registry.Find(name); ok {
		return t, nil
	}

	suggestions := theme.Suggest(registry.Names(), name)
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("%w: %s", theme.ErrThemeNotFound, name)
	}
	return nil, fmt.Errorf("%w: %s (did you mean %s?)",
		theme.ErrThemeNotFound, name, strings.Join(suggestions, ", "))
}
