package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/themectl/internal/theme"
)

// YAMLFormatter formats themes as a YAML sequence.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes themes as YAML.
func (f *YAMLFormatter) Format(w io.Writer, themes []theme.Info) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(themes); err != nil {
		return err
	}
	return encoder.Close()
}
