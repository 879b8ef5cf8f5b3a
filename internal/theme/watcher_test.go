package theme

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themectl/internal/prefs"
)

func TestWatcher_ReloadsOnNewTheme(t *testing.T) {
	dir := t.TempDir()
	r := newTestRegistry(t, dir, prefs.NewMemory("late"))

	w := NewWatcher(r, nil)
	w.SetDebounce(20 * time.Millisecond)

	changed := make(chan []string, 4)
	w.SetChangeCallback(func(r *Registry) {
		changed <- r.Names()
	})

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()
	assert.True(t, w.IsRunning())

	writeTheme(t, dir, "late.json", "{}")

	select {
	case names := <-changed:
		assert.Equal(t, []string{"Default", "late"}, names)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload")
	}

	// The preferred theme appeared, so it is now selected.
	assert.Equal(t, "late", r.Current().Name())
}

func TestWatcher_ReloadsOnRemove(t *testing.T) {
	dir := t.TempDir()
	path := writeTheme(t, dir, "dark.json", "{}")
	r := newTestRegistry(t, dir, prefs.NewMemory(""))

	w := NewWatcher(r, nil)
	w.SetDebounce(20 * time.Millisecond)
	changed := make(chan struct{}, 4)
	w.SetChangeCallback(func(*Registry) { changed <- struct{}{} })

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.Remove(path))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload")
	}
	assert.Equal(t, []string{"Default"}, r.Names())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	r := newTestRegistry(t, dir, prefs.NewMemory(""))

	w := NewWatcher(r, nil)
	w.SetDebounce(10 * time.Millisecond)
	changed := make(chan struct{}, 4)
	w.SetChangeCallback(func(*Registry) { changed <- struct{}{} })

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case <-changed:
		t.Fatal("reload triggered by a non-theme file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StartStop(t *testing.T) {
	r := newTestRegistry(t, t.TempDir(), prefs.NewMemory(""))
	w := NewWatcher(r, nil)

	assert.False(t, w.IsRunning())
	w.Stop() // no-op before start

	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Start(context.Background()), "second start is a no-op")
	assert.True(t, w.IsRunning())

	w.Stop()
	assert.False(t, w.IsRunning())
	w.Stop()
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	r := newTestRegistry(t, t.TempDir(), prefs.NewMemory(""))
	w := NewWatcher(r, nil)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stop blocked after context cancel")
	}
}

func TestWatcher_RestartAfterContextCancel(t *testing.T) {
	dir := t.TempDir()
	r := newTestRegistry(t, dir, prefs.NewMemory(""))
	w := NewWatcher(r, nil)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !w.IsRunning() }, 5*time.Second, 10*time.Millisecond)

	reloaded := make(chan struct{}, 1)
	w.SetChangeCallback(func(*Registry) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()
	assert.True(t, w.IsRunning())

	writeTheme(t, dir, "again.json", "{}")
	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("restarted watcher did not reload")
	}
	assert.Equal(t, []string{"Default", "again"}, r.Names())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	dir := t.TempDir()
	r := newTestRegistry(t, dir, prefs.NewMemory(""))
	require.NoError(t, os.Remove(dir))

	w := NewWatcher(r, nil)
	assert.Error(t, w.Start(context.Background()))
	assert.False(t, w.IsRunning())
}
