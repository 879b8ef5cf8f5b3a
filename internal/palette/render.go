package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultSwatchWidth is the width of a rendered color block in cells.
const DefaultSwatchWidth = 6

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	keyStyle     = lipgloss.NewStyle().Width(28)
	hexStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderOptions controls Render.
type RenderOptions struct {
	SwatchWidth int    // Width of each color block (0 = DefaultSwatchWidth)
	Section     string // Only render keys under this top-level section (empty = all)
}

// Render draws one line per color: a filled swatch, the key and the hex value,
// grouped under their top-level section.
func Render(p *Palette, opts RenderOptions) string {
	width := opts.SwatchWidth
	if width <= 0 {
		width = DefaultSwatchWidth
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(p.Name))
	sb.WriteString(fmt.Sprintf(" (%d colors)\n", p.Len()))

	currentSection := "\x00"
	for _, e := range p.entries {
		section, rest, found := strings.Cut(e.Key, KeySeparator)
		if !found {
			section, rest = "", e.Key
		}
		if opts.Section != "" && section != opts.Section {
			continue
		}
		if section != currentSection {
			currentSection = section
			if section != "" {
				sb.WriteString(sectionStyle.Render(section))
				sb.WriteString("\n")
			}
		}

		sb.WriteString(Swatch(e.Color, width))
		sb.WriteString(" ")
		sb.WriteString(keyStyle.Render(rest))
		sb.WriteString(hexStyle.Render(e.Color.Hex()))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Swatch renders a block of width cells filled with c.
func Swatch(c Color, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).
		Render(strings.Repeat(" ", width))
}
