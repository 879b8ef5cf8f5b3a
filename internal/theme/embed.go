package theme

import (
	_ "embed"
)

// defaultPalette holds the colors of the built-in theme in the same JSON layout
// as user theme files.
//
//go:embed themes/default.json
var defaultPalette []byte

// DefaultPalette returns a copy of the built-in theme definition.
func DefaultPalette() []byte {
	data := make([]byte, len(defaultPalette))
	copy(data, defaultPalette)
	return data
}

// Source returns the theme definition bytes: the embedded palette for the default
// theme, or the backing file contents otherwise.
func Source(t *Theme) ([]byte, error) {
	if t.IsDefault() {
		return DefaultPalette(), nil
	}
	return readThemeFile(t.Path())
}
