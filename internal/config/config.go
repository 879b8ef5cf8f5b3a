// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultExtension   = ".json"
	DefaultDebounce    = 250 * time.Millisecond
	DefaultSwatchWidth = 6
	DefaultListFormat  = "plain"

	// AppDir is the per-user directory shared with the editor.
	AppDir = "AGS"
	// ThemesSubdir holds the theme files inside AppDir.
	ThemesSubdir = "Themes"
)

// ValidListFormats lists the accepted values for list.format.
var ValidListFormats = []string{"plain", "names", "json", "yaml"}

// Config represents the themectl configuration.
type Config struct {
	Themes      ThemesConfig      `toml:"themes"`
	Preferences PreferencesConfig `toml:"preferences"`
	Watch       WatchConfig       `toml:"watch"`
	Preview     PreviewConfig     `toml:"preview"`
	List        ListConfig        `toml:"list"`
	Clipboard   ClipboardConfig   `toml:"clipboard"`
}

// ThemesConfig locates the managed themes directory.
type ThemesConfig struct {
	Dir       string `toml:"dir"`       // Empty = <local-app-data>/AGS/Themes
	Extension string `toml:"extension"` // Theme file extension, including the dot
}

// PreferencesConfig locates the editor preferences file.
type PreferencesConfig struct {
	Path string `toml:"path"` // Empty = <local-app-data>/AGS/preferences.toml
}

// WatchConfig holds settings for `themectl watch`.
type WatchConfig struct {
	Debounce Duration `toml:"debounce"` // e.g. "250ms"
}

// PreviewConfig holds palette preview settings.
type PreviewConfig struct {
	SwatchWidth int `toml:"swatch_width"`
}

// ListConfig holds defaults for `themectl list`.
type ListConfig struct {
	Format string `toml:"format"` // plain, names, json, yaml
}

// ClipboardConfig holds clipboard settings (picker only).
type ClipboardConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Themes: ThemesConfig{
			Dir:       "",
			Extension: DefaultExtension,
		},
		Preferences: PreferencesConfig{
			Path: "",
		},
		Watch: WatchConfig{
			Debounce: Duration(DefaultDebounce),
		},
		Preview: PreviewConfig{
			SwatchWidth: DefaultSwatchWidth,
		},
		List: ListConfig{
			Format: DefaultListFormat,
		},
		Clipboard: ClipboardConfig{
			Command: "", // Auto-detect
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "themectl", "config.toml")
}

// LocalAppDataDir returns the per-user local application data directory.
// Uses LOCALAPPDATA (Windows), then XDG_DATA_HOME, otherwise ~/.local/share.
func LocalAppDataDir() string {
	if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
		return dir
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share")
}

// ThemesDir returns the default managed themes directory.
func ThemesDir() string {
	base := LocalAppDataDir()
	if base == "" {
		return ""
	}
	return filepath.Join(base, AppDir, ThemesSubdir)
}

// PreferencesPath returns the default editor preferences file.
func PreferencesPath() string {
	base := LocalAppDataDir()
	if base == "" {
		return ""
	}
	return filepath.Join(base, AppDir, "preferences.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently and normalizes the rest.
func (c *Config) Validate() error {
	ext := strings.TrimSpace(c.Themes.Extension)
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if strings.ContainsAny(ext[1:], `./\`) || len(ext) == 1 {
		return fmt.Errorf("themes.extension %q is not a file extension", c.Themes.Extension)
	}
	c.Themes.Extension = ext

	if c.Preview.SwatchWidth <= 0 {
		c.Preview.SwatchWidth = DefaultSwatchWidth
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = Duration(DefaultDebounce)
	}

	if c.List.Format == "" {
		c.List.Format = DefaultListFormat
	}
	valid := false
	for _, f := range ValidListFormats {
		if c.List.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("list.format %q must be one of %s", c.List.Format, strings.Join(ValidListFormats, ", "))
	}
	return nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ResolvedThemesDir returns the configured themes directory or the default one.
func (c *Config) ResolvedThemesDir() (string, error) {
	if c.Themes.Dir != "" {
		return expandHome(c.Themes.Dir)
	}
	dir := ThemesDir()
	if dir == "" {
		return "", errors.New("unable to determine themes directory")
	}
	return dir, nil
}

// ResolvedPreferencesPath returns the configured preferences file or the default one.
func (c *Config) ResolvedPreferencesPath() (string, error) {
	if c.Preferences.Path != "" {
		return expandHome(c.Preferences.Path)
	}
	path := PreferencesPath()
	if path == "" {
		return "", errors.New("unable to determine preferences path")
	}
	return path, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
