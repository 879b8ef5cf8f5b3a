// Package prefs stores the editor preferences that outlive a session: the
// selected color theme and a few related settings. The whole store is written
// back on every Save.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// maxRecentThemes bounds Preferences.RecentThemes.
const maxRecentThemes = 5

// Preferences is the on-disk preferences document.
type Preferences struct {
	ColorTheme    string   `toml:"color_theme"`     // Name of the selected theme
	ColorScheme   string   `toml:"color_scheme"`    // "system", "light" or "dark"
	LastImportDir string   `toml:"last_import_dir"` // Directory of the last imported theme
	RecentThemes  []string `toml:"recent_themes"`   // Most recent first
}

// pushRecent moves name to the front of RecentThemes.
func (p *Preferences) pushRecent(name string) {
	if name == "" {
		return
	}
	recent := []string{name}
	for _, r := range p.RecentThemes {
		if r != name && len(recent) < maxRecentThemes {
			recent = append(recent, r)
		}
	}
	p.RecentThemes = recent
}

// File is a preferences store backed by a TOML file.
type File struct {
	mu    sync.Mutex
	path  string
	prefs Preferences
}

// Open loads the preferences file at path. A missing file yields empty preferences.
func Open(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("preferences path must be set")
	}

	f := &File{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read preferences %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &f.prefs); err != nil {
		return nil, fmt.Errorf("parse preferences %s: %w", path, err)
	}
	return f, nil
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// ColorTheme returns the selected theme name.
func (f *File) ColorTheme() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prefs.ColorTheme
}

// SetColorTheme records the selected theme name. It is not written until Save.
func (f *File) SetColorTheme(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefs.ColorTheme = name
	f.prefs.pushRecent(name)
}

// SetLastImportDir records the directory a theme was last imported from.
func (f *File) SetLastImportDir(dir string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefs.LastImportDir = dir
}

// Snapshot returns a copy of the in-memory preferences.
func (f *File) Snapshot() Preferences {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.prefs
	p.RecentThemes = append([]string(nil), f.prefs.RecentThemes...)
	return p
}

// Save writes every preference to disk, replacing the file atomically.
func (f *File) Save() error {
	f.mu.Lock()
	data, err := toml.Marshal(f.prefs)
	f.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create preferences directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp preferences: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close preferences: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace preferences %s: %w", f.path, err)
	}
	return nil
}
