package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/themectl/internal/theme"
)

// PlainFormatter formats themes as a human-readable list.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// Format writes one line per theme, with "*" marking the selected one.
func (f *PlainFormatter) Format(w io.Writer, themes []theme.Info) error {
	width := 0
	for _, t := range themes {
		width = max(width, len(t.Name))
	}

	for _, t := range themes {
		var sb strings.Builder

		if t.IsCurrent {
			sb.WriteString("* ")
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(fmt.Sprintf("%-*s", width, t.Name))

		switch {
		case t.IsDefault:
			sb.WriteString("  (built-in)")
		case f.opts.ShowMeta && !t.ModTime.IsZero():
			sb.WriteString(fmt.Sprintf("  %8s  %s",
				humanize.Bytes(uint64(t.Size)),
				humanize.Time(t.ModTime)))
		case f.opts.ShowMeta:
			sb.WriteString("  (missing)")
		}

		if f.opts.ShowPath && t.Path != "" {
			sb.WriteString("  " + t.Path)
		}

		sb.WriteString("\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
