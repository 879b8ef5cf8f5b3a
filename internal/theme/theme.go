package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultThemeName is the display name of the built-in appearance.
const DefaultThemeName = "Default"

// DefaultExtension is the file extension of theme definitions in the themes directory.
const DefaultExtension = ".json"

// MaxThemeFileSize is the largest theme definition that will be read (1 MiB).
const MaxThemeFileSize int64 = 1 << 20

// Kind distinguishes the built-in appearance from file-backed themes.
type Kind int

const (
	// KindDefault is the built-in appearance. It has no backing file.
	KindDefault Kind = iota
	// KindFile is a theme defined by a JSON file in the themes directory.
	KindFile
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Theme is a selectable color theme.
// Themes are immutable once created.
type Theme struct {
	kind Kind
	name string
	path string
}

// Default is the built-in theme. It is always the first entry of a registry.
var Default = &Theme{kind: KindDefault, name: DefaultThemeName}

// NewFileTheme creates a file-backed theme.
func NewFileTheme(name, path string) *Theme {
	return &Theme{kind: KindFile, name: name, path: path}
}

// Kind returns the theme variant.
func (t *Theme) Kind() Kind { return t.kind }

// Name returns the display name. For file themes this is the file base name without extension.
func (t *Theme) Name() string { return t.name }

// Path returns the backing file path (empty for the default theme).
func (t *Theme) Path() string { return t.path }

// IsDefault reports whether t is the built-in theme.
// A file theme named "Default" is not the built-in theme.
func (t *Theme) IsDefault() bool {
	return t != nil && t.kind == KindDefault
}

// Info describes a theme for listing, including file metadata when available.
type Info struct {
	Name      string    `json:"name" yaml:"name"`
	Kind      string    `json:"kind" yaml:"kind"`
	Path      string    `json:"path,omitempty" yaml:"path,omitempty"`
	Size      int64     `json:"size,omitempty" yaml:"size,omitempty"`
	ModTime   time.Time `json:"mod_time,omitzero" yaml:"mod_time,omitempty"`
	IsCurrent bool      `json:"current" yaml:"current"`
	IsDefault bool      `json:"default" yaml:"default"`
}

// Describe builds listing info for t. File metadata is best effort: a missing file
// leaves Size and ModTime zero.
func Describe(t *Theme, current bool) Info {
	info := Info{
		Name:      t.Name(),
		Kind:      t.Kind().String(),
		Path:      t.Path(),
		IsCurrent: current,
		IsDefault: t.IsDefault(),
	}
	if t.Path() != "" {
		if fi, err := os.Stat(t.Path()); err == nil {
			info.Size = fi.Size()
			info.ModTime = fi.ModTime()
		}
	}
	return info
}

// nameFromPath returns the file base name without its extension.
func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// readThemeFile reads a theme definition, refusing files over MaxThemeFileSize.
func readThemeFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat theme %s: %w", path, err)
	}
	if info.Size() > MaxThemeFileSize {
		return nil, fmt.Errorf("theme %s is %d bytes, larger than %d", path, info.Size(), MaxThemeFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	return data, nil
}
