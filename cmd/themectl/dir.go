package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the themes directory",
	Long: `Print the managed themes directory. It is created if it does not exist.

Examples:
  cp MyTheme.json "$(themectl dir)"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), registry.Dir())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dirCmd)
}
