package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/themectl/internal/theme"
)

// JSONFormatter formats themes as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes themes as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, themes []theme.Info) error {
	if themes == nil {
		themes = []theme.Info{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(themes)
}
