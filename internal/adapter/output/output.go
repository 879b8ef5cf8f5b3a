// Package output provides output formatters for theme listings.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/themectl/internal/theme"
)

// Formatter formats theme listings for output.
type Formatter interface {
	// Format writes formatted themes to the writer.
	Format(w io.Writer, themes []theme.Info) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatNames FormatType = "names"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	ShowPath bool // Show the backing file path (plain only)
	ShowMeta bool // Show size and modification time (plain only)
}

// DefaultFormatterOptions returns the defaults used by `themectl list`.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowPath: false,
		ShowMeta: true,
	}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) (Formatter, error) {
	switch format {
	case FormatPlain, "":
		return NewPlainFormatter(opts), nil
	case FormatNames:
		return NewNamesFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatYAML:
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Describe builds listing info for all themes, marking current.
func Describe(themes []*theme.Theme, current *theme.Theme) []theme.Info {
	infos := make([]theme.Info, 0, len(themes))
	for _, t := range themes {
		infos = append(infos, theme.Describe(t, t == current))
	}
	return infos
}
