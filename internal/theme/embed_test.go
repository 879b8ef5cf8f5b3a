package theme

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette_IsValidJSON(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal(DefaultPalette(), &doc))
	assert.Contains(t, doc, "global")
	assert.Contains(t, doc, "script-editor")
}

func TestDefaultPalette_ReturnsCopy(t *testing.T) {
	data := DefaultPalette()
	require.NotEmpty(t, data)
	data[0] = 'X'
	assert.NotEqual(t, byte('X'), DefaultPalette()[0])
}

func TestSource_Default(t *testing.T) {
	data, err := Source(Default)
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), data)
}

func TestSource_FileTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dark.json")
	content := []byte(`{"global":{"background":"#1e1e1e"}}`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	data, err := Source(NewFileTheme("dark", path))
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestSource_MissingFile(t *testing.T) {
	_, err := Source(NewFileTheme("gone", "/nonexistent/gone.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
