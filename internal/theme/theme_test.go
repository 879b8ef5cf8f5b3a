package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	assert.True(t, Default.IsDefault())
	assert.Equal(t, KindDefault, Default.Kind())
	assert.Equal(t, DefaultThemeName, Default.Name())
	assert.Empty(t, Default.Path())
}

func TestFileTheme_NamedDefaultIsNotDefault(t *testing.T) {
	impostor := NewFileTheme(DefaultThemeName, "/themes/Default.json")
	assert.False(t, impostor.IsDefault())
	assert.Equal(t, KindFile, impostor.Kind())
}

func TestTheme_NilIsNotDefault(t *testing.T) {
	var nilTheme *Theme
	assert.False(t, nilTheme.IsDefault())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "default", KindDefault.String())
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestNameFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/themes/dark.json", "dark"},
		{"dark.json", "dark"},
		{"/themes/solarized.light.json", "solarized.light"},
		{"/themes/noext", "noext"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, nameFromPath(tt.path))
		})
	}
}

func TestDescribe_FileTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dark.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":"#000000"}`), 0644))

	info := Describe(NewFileTheme("dark", path), true)
	assert.Equal(t, "dark", info.Name)
	assert.Equal(t, "file", info.Kind)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(15), info.Size)
	assert.False(t, info.ModTime.IsZero())
	assert.True(t, info.IsCurrent)
	assert.False(t, info.IsDefault)
}

func TestDescribe_MissingFile(t *testing.T) {
	info := Describe(NewFileTheme("gone", "/nonexistent/gone.json"), false)
	assert.Zero(t, info.Size)
	assert.True(t, info.ModTime.IsZero())
}

func TestDescribe_Default(t *testing.T) {
	info := Describe(Default, false)
	assert.True(t, info.IsDefault)
	assert.Equal(t, "default", info.Kind)
	assert.Empty(t, info.Path)
}

func TestReadThemeFile_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.json")
	require.NoError(t, os.WriteFile(path, make([]byte, MaxThemeFileSize+1), 0644))

	_, err := readThemeFile(path)
	assert.Error(t, err)
}
