package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFile(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "preferences.toml"))
	require.NoError(t, err)
	assert.Empty(t, f.ColorTheme())
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestOpen_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("color_theme = ["), 0644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestFile_SaveAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.toml")

	f, err := Open(path)
	require.NoError(t, err)

	f.SetColorTheme("dark")
	f.SetLastImportDir("/home/user/Downloads")
	require.NoError(t, f.Save())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", reopened.ColorTheme())

	snap := reopened.Snapshot()
	assert.Equal(t, "/home/user/Downloads", snap.LastImportDir)
	assert.Equal(t, []string{"dark"}, snap.RecentThemes)
}

func TestFile_SaveWritesAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	content := `color_theme = "light"
color_scheme = "dark"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	f, err := Open(path)
	require.NoError(t, err)
	f.SetColorTheme("solarized")
	require.NoError(t, f.Save())

	reopened, err := Open(path)
	require.NoError(t, err)
	snap := reopened.Snapshot()
	assert.Equal(t, "solarized", snap.ColorTheme)
	assert.Equal(t, "dark", snap.ColorScheme)
}

func TestFile_SetColorThemeNotPersistedUntilSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")

	f, err := Open(path)
	require.NoError(t, err)
	f.SetColorTheme("dark")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestPreferences_PushRecent(t *testing.T) {
	var p Preferences
	for _, name := range []string{"a", "b", "c", "a", "d", "e", "f"} {
		p.pushRecent(name)
	}
	assert.Equal(t, []string{"f", "e", "d", "a", "c"}, p.RecentThemes)

	p.pushRecent("")
	assert.Len(t, p.RecentThemes, maxRecentThemes)
}

func TestMemory_Save(t *testing.T) {
	m := NewMemory("dark")
	assert.Equal(t, "dark", m.ColorTheme())
	assert.Equal(t, 0, m.Saves())

	m.SetColorTheme("light")
	m.SetLastImportDir("/tmp")
	require.NoError(t, m.Save())

	assert.Equal(t, 1, m.Saves())
	assert.Equal(t, "light", m.Saved().ColorTheme)
	assert.Equal(t, "/tmp", m.Saved().LastImportDir)
}

func TestMemory_SaveError(t *testing.T) {
	m := NewMemory("")
	m.SaveErr = assert.AnError

	err := m.Save()
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, m.Saves())
}
