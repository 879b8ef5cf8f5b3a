package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themectl/internal/prefs"
	"github.com/jmylchreest/themectl/internal/theme"
)

type testEnv struct {
	dir       string
	themesDir string
	prefsPath string
}

func newTestEnv(t *testing.T, themes ...string) testEnv {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{
		dir:       dir,
		themesDir: filepath.Join(dir, "Themes"),
		prefsPath: filepath.Join(dir, "preferences.toml"),
	}
	require.NoError(t, os.MkdirAll(env.themesDir, 0755))
	for _, name := range themes {
		require.NoError(t, os.WriteFile(filepath.Join(env.themesDir, name+".json"), []byte(`{"global": {"background": "#101010"}}`), 0644))
	}
	return env
}

// run executes the root command with fresh option state.
func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	listOpts.format, listOpts.showPath, listOpts.noMeta = "", false, false
	currentOpts.path = false
	importOpts.force, importOpts.use = false, false
	previewOpts.section, previewOpts.width = "", 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(e.dir, "config.toml"),
		"--themes-dir", e.themesDir,
		"--prefs", e.prefsPath,
	}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func (e testEnv) savedTheme(t *testing.T) string {
	t.Helper()
	f, err := prefs.Open(e.prefsPath)
	require.NoError(t, err)
	return f.ColorTheme()
}

func TestList_Names(t *testing.T) {
	env := newTestEnv(t, "Nord", "Dracula")

	out, err := env.run(t, "list", "--format", "names")
	require.NoError(t, err)
	assert.Equal(t, "Default\nDracula\nNord\n", out)
}

func TestList_UnknownFormat(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "list", "--format", "xml")
	assert.Error(t, err)
}

func TestSetAndCurrent(t *testing.T) {
	env := newTestEnv(t, "Nord")

	out, err := env.run(t, "current")
	require.NoError(t, err)
	assert.Equal(t, "Default\n", out)

	out, err = env.run(t, "set", "Nord")
	require.NoError(t, err)
	assert.Equal(t, "Using Nord\n", out)
	assert.Equal(t, "Nord", env.savedTheme(t))

	out, err = env.run(t, "current")
	require.NoError(t, err)
	assert.Equal(t, "Nord\n", out)

	out, err = env.run(t, "current", "--path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.themesDir, "Nord.json")+"\n", out)
}

func TestCurrent_PathForDefaultIsEmpty(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "current", "--path")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSet_UnknownSuggests(t *testing.T) {
	env := newTestEnv(t, "Dracula")

	_, err := env.run(t, "set", "dracla")
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrThemeNotFound)
	assert.Contains(t, err.Error(), "did you mean Dracula")
}

func TestImport_UseRecordsDirectory(t *testing.T) {
	env := newTestEnv(t)
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "Solar.json")
	require.NoError(t, os.WriteFile(src, []byte(`{}`), 0644))

	out, err := env.run(t, "import", "--use", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported Solar")
	assert.FileExists(t, filepath.Join(env.themesDir, "Solar.json"))

	f, err := prefs.Open(env.prefsPath)
	require.NoError(t, err)
	snap := f.Snapshot()
	assert.Equal(t, "Solar", snap.ColorTheme)
	assert.Equal(t, srcDir, snap.LastImportDir)
}

func TestImport_ExistingNeedsForce(t *testing.T) {
	env := newTestEnv(t, "Solar")
	src := filepath.Join(t.TempDir(), "Solar.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"new": true}`), 0644))

	_, err := env.run(t, "import", src)
	assert.ErrorIs(t, err, theme.ErrThemeExists)

	_, err = env.run(t, "import", "--force", src)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(env.themesDir, "Solar.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"new": true}`, string(data))

	// The current theme is unchanged without --use.
	assert.Empty(t, env.savedTheme(t))
}

func TestPreview(t *testing.T) {
	env := newTestEnv(t, "Nord")

	out, err := env.run(t, "preview", "Nord")
	require.NoError(t, err)
	assert.Contains(t, out, "Nord")
	assert.Contains(t, out, "#101010")

	out, err = env.run(t, "preview")
	require.NoError(t, err)
	assert.Contains(t, out, "Default")
}

func TestDir_CreatesDirectory(t *testing.T) {
	env := newTestEnv(t)
	env.themesDir = filepath.Join(env.dir, "nested", "Themes")

	out, err := env.run(t, "dir")
	require.NoError(t, err)
	assert.Equal(t, env.themesDir+"\n", out)
	assert.DirExists(t, env.themesDir)
}
