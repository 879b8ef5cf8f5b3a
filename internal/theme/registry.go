package theme

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	// ErrNilTheme is returned when a nil theme is selected.
	ErrNilTheme = errors.New("the provided theme must not be nil")

	// ErrThemeExists is returned when an import would replace an existing theme file.
	ErrThemeExists = errors.New("theme file already exists")

	// ErrThemeNotFound is returned when a theme name is not in the registry.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrNotTheme is returned when an imported file lacks the theme extension.
	ErrNotTheme = errors.New("not a theme file")
)

// Preferences is the persistent settings store the registry reads the selected
// theme from and writes it back to.
type Preferences interface {
	// ColorTheme returns the stored theme name (empty if unset).
	ColorTheme() string

	// SetColorTheme updates the stored theme name in memory.
	SetColorTheme(name string)

	// Save persists every setting in the store, not only the theme name.
	Save() error
}

// Registry tracks the available themes and the selected one.
type Registry struct {
	mu        sync.RWMutex
	logger    *slog.Logger
	dir       string
	extension string
	prefs     Preferences

	themes  []*Theme
	current *Theme
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used by the registry.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithExtension sets the file extension that marks a theme definition (default ".json").
func WithExtension(ext string) Option {
	return func(r *Registry) {
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.extension = ext
	}
}

// NewRegistry creates the themes directory if needed and loads the registry from it.
func NewRegistry(dir string, prefs Preferences, opts ...Option) (*Registry, error) {
	if dir == "" {
		return nil, errors.New("themes directory must be set")
	}
	if prefs == nil {
		return nil, errors.New("preferences store must be set")
	}

	r := &Registry{
		logger:    slog.Default(),
		dir:       dir,
		extension: DefaultExtension,
		prefs:     prefs,
		current:   Default,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create themes directory %s: %w", dir, err)
	}

	if err := r.Load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Dir returns the managed themes directory.
func (r *Registry) Dir() string {
	return r.dir
}

// Load rebuilds the theme list from the themes directory and reselects the
// theme named in the preferences, falling back to Default.
// Files are listed non-recursively in file name order.
func (r *Registry) Load() error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("read themes directory %s: %w", r.dir, err)
	}

	themes := []*Theme{Default}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), r.extension) {
			continue
		}
		themes = append(themes, NewFileTheme(nameFromPath(name), filepath.Join(r.dir, name)))
	}

	selected := r.prefs.ColorTheme()
	current := Default
	for _, t := range themes {
		if t.Name() == selected {
			current = t
			break
		}
	}

	if selected != "" && current.Name() != selected {
		r.logger.Debug("selected theme not found, using default", "theme", selected)
	}

	r.mu.Lock()
	r.themes = themes
	r.current = current
	r.mu.Unlock()

	r.logger.Debug("loaded themes", "dir", r.dir, "count", len(themes)-1, "current", current.Name())
	return nil
}

// Current returns the selected theme. It is never nil.
func (r *Registry) Current() *Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// SetCurrent selects t, stores its name in the preferences and saves the whole
// preferences store. Any other pending preference change is written as well.
// t does not have to be one of Themes().
func (r *Registry) SetCurrent(t *Theme) error {
	if t == nil {
		return ErrNilTheme
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = t
	r.prefs.SetColorTheme(t.Name())
	if err := r.prefs.Save(); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	r.logger.Debug("selected theme", "name", t.Name(), "path", t.Path())
	return nil
}

// Themes returns a snapshot of the available themes. Default is always first.
func (r *Registry) Themes() []*Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()

	themes := make([]*Theme, len(r.themes))
	copy(themes, r.themes)
	return themes
}

// IsCurrentDefault reports whether the built-in theme is selected.
func (r *Registry) IsCurrentDefault() bool {
	return r.Current().IsDefault()
}

// Apply calls fn with the selected theme unless it is the built-in theme.
func (r *Registry) Apply(fn func(t *Theme)) {
	current := r.Current()
	if current.IsDefault() {
		return
	}
	fn(current)
}

// Find returns the first theme with the given name.
func (r *Registry) Find(name string) (*Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.themes {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Names returns the theme names in registry order.
func (r *Registry) Names() []string {
	themes := r.Themes()
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.Name())
	}
	return names
}

// ImportOption configures Import.
type ImportOption func(*importOptions)

type importOptions struct {
	overwrite bool
}

// WithOverwrite lets Import replace an existing theme file. The replaced file is
// kept next to it as "<file>.<ulid>.bak". The new contents are fully copied
// before the old file is moved aside.
func WithOverwrite() ImportOption {
	return func(o *importOptions) {
		o.overwrite = true
	}
}

// Import copies the theme file at src into the themes directory and adds it to
// the registry. The new theme points at the copy. The selected theme does not change.
// src must carry the registry's theme extension, otherwise ErrNotTheme is returned.
func (r *Registry) Import(src string, opts ...ImportOption) (*Theme, error) {
	var o importOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !strings.EqualFold(filepath.Ext(src), r.extension) {
		return nil, fmt.Errorf("%w: %s does not end in %s", ErrNotTheme, src, r.extension)
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", src, err)
	}
	if srcInfo.IsDir() {
		return nil, fmt.Errorf("import %s: is a directory", src)
	}

	dst := filepath.Join(r.dir, filepath.Base(src))

	exists := false
	if dstInfo, err := os.Stat(dst); err == nil {
		if os.SameFile(srcInfo, dstInfo) {
			return nil, fmt.Errorf("%w: %s is already in the themes directory", ErrThemeExists, dst)
		}
		if !o.overwrite {
			return nil, fmt.Errorf("%w: %s", ErrThemeExists, dst)
		}
		exists = true
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", dst, err)
	}

	if exists {
		backup, err := replaceFile(src, dst)
		if err != nil {
			return nil, err
		}
		r.logger.Info("replaced theme file backed up", "path", dst, "backup", backup)
	} else if err := copyFile(src, dst); err != nil {
		return nil, err
	}

	t := NewFileTheme(nameFromPath(src), dst)

	r.mu.Lock()
	replaced := false
	for i, existing := range r.themes {
		if existing.Path() == dst {
			r.themes[i] = t
			if r.current == existing {
				r.current = t
			}
			replaced = true
			break
		}
	}
	if !replaced {
		r.themes = append(r.themes, t)
	}
	r.mu.Unlock()

	r.logger.Info("imported theme", "name", t.Name(), "from", src, "to", dst)
	return t, nil
}

// copyFile copies src to a new file at dst. dst must not exist.
func copyFile(src, dst string) error {
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrThemeExists, dst)
		}
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if err := writeFrom(out, src); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}

// replaceFile copies src over the existing dst and returns the backup path.
// The copy is staged in dst's directory, so a failed copy leaves dst untouched.
func replaceFile(src, dst string) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("stage %s: %w", dst, err)
	}
	staged := tmp.Name()

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(staged)
		return "", fmt.Errorf("stage %s: %w", dst, err)
	}
	if err := writeFrom(tmp, src); err != nil {
		os.Remove(staged)
		return "", err
	}

	backup, err := backupFile(dst)
	if err != nil {
		os.Remove(staged)
		return "", err
	}
	if err := os.Rename(staged, dst); err != nil {
		os.Remove(staged)
		if rerr := os.Rename(backup, dst); rerr != nil {
			return "", fmt.Errorf("install %s: %w (previous file kept at %s)", dst, err, backup)
		}
		return "", fmt.Errorf("install %s: %w", dst, err)
	}
	return backup, nil
}

// writeFrom copies the contents of src into out and closes out.
func writeFrom(out *os.File, src string) error {
	in, err := os.Open(src)
	if err != nil {
		out.Close()
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, out.Name(), err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out.Name(), err)
	}
	return nil
}

// backupFile renames path to "<path>.<ulid>.bak" and returns the new name.
func backupFile(path string) (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", fmt.Errorf("generate backup id: %w", err)
	}
	backup := path + "." + id.String() + ".bak"
	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("back up %s: %w", path, err)
	}
	return backup, nil
}
