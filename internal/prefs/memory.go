package prefs

import "sync"

// Memory is an in-memory preferences store. Save only counts calls and keeps a
// copy of what would have been written.
type Memory struct {
	mu      sync.Mutex
	prefs   Preferences
	saved   Preferences
	saves   int
	SaveErr error // returned by Save when set
}

// NewMemory returns a store with the given theme selected.
func NewMemory(colorTheme string) *Memory {
	return &Memory{prefs: Preferences{ColorTheme: colorTheme}}
}

// ColorTheme returns the selected theme name.
func (m *Memory) ColorTheme() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs.ColorTheme
}

// SetColorTheme records the selected theme name.
func (m *Memory) SetColorTheme(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs.ColorTheme = name
	m.prefs.pushRecent(name)
}

// SetLastImportDir records the directory a theme was last imported from.
func (m *Memory) SetLastImportDir(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs.LastImportDir = dir
}

// Save snapshots the current preferences.
func (m *Memory) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.saved = m.prefs
	m.saved.RecentThemes = append([]string(nil), m.prefs.RecentThemes...)
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Saved returns the preferences as of the last successful Save.
func (m *Memory) Saved() Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved
}
