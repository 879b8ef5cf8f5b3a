package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themectl/internal/theme"
)

var importOpts struct {
	force bool
	use   bool
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Copy a theme file into the themes directory",
	Long: `Copy a theme file into the themes directory and add it to the list.

The file keeps its name, so a theme called "Dracula.json" becomes the theme
"Dracula". Only files with the theme extension are accepted. An existing file
with the same name is only replaced with --force; the replaced file is kept
next to it as "<file>.<id>.bak".

The selected theme does not change unless --use is given.

Examples:
  themectl import ~/Downloads/Dracula.json
  themectl import --force --use ./Nord.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVar(&importOpts.force, "force", false,
		"Replace an existing theme file (a backup is kept)")
	importCmd.Flags().BoolVar(&importOpts.use, "use", false,
		"Select the imported theme")
}

func runImport(cmd *cobra.Command, args []string) error {
	src := args[0]

	var opts []theme.ImportOption
	if importOpts.force {
		opts = append(opts, theme.WithOverwrite())
	}

	t, err := registry.Import(src, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s to %s\n", t.Name(), t.Path())

	if abs, err := filepath.Abs(src); err == nil {
		prefsFile.SetLastImportDir(filepath.Dir(abs))
	}

	// SetCurrent saves the whole store, including the import directory.
	if importOpts.use {
		if err := registry.SetCurrent(t); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Using %s\n", t.Name())
		return nil
	}

	if err := prefsFile.Save(); err != nil {
		logger.Warn("failed to save preferences", "error", err)
	}
	return nil
}
