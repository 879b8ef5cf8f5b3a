package theme

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last directory event before reloading.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a registry when theme files are added, removed, renamed or rewritten.
type Watcher struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	registry *Registry

	debounce time.Duration

	// Callback after a successful reload
	onChangeCallback func(r *Registry)

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}

	running bool
}

// NewWatcher creates a watcher for the registry's themes directory.
func NewWatcher(r *Registry, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		logger:   logger,
		registry: r,
		debounce: DefaultDebounce,
	}
}

// SetDebounce sets the quiet period before a reload.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.debounce = d
	}
}

// SetChangeCallback sets the callback to invoke after the registry reloads.
func (w *Watcher) SetChangeCallback(callback func(r *Registry)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChangeCallback = callback
}

// Start begins watching the themes directory.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(w.registry.Dir()); err != nil {
		fw.Close()
		return err
	}

	w.watcher = fw
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.watchLoop(ctx, fw, w.debounce, w.stopCh, w.doneCh)

	w.logger.Debug("theme watcher started", "dir", w.registry.Dir(), "debounce", w.debounce)
	return nil
}

// Stop stops watching and waits for the watch loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	doneCh := w.doneCh
	fw := w.watcher
	w.watcher = nil
	w.mu.Unlock()

	<-doneCh
	if err := fw.Close(); err != nil {
		w.logger.Debug("closing fsnotify watcher", "error", err)
	}
	w.logger.Debug("theme watcher stopped")
}

// IsRunning returns whether the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// watchLoop coalesces directory events and reloads once things go quiet.
func (w *Watcher) watchLoop(ctx context.Context, fw *fsnotify.Watcher, debounce time.Duration, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.exited(fw)
			return
		case <-stopCh:
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("theme directory changed", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)

		case <-timerC:
			timerC = nil
			w.reload()
		}
	}
}

// exited marks the watcher stopped when the loop ends without Stop, so that
// IsRunning reports false and Start can be called again.
func (w *Watcher) exited(fw *fsnotify.Watcher) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Stop already took over this session.
	if !w.running || w.watcher != fw {
		return
	}
	w.running = false
	w.watcher = nil
	if err := fw.Close(); err != nil {
		w.logger.Debug("closing fsnotify watcher", "error", err)
	}
	w.logger.Debug("theme watcher stopped", "reason", "context done")
}

// relevant reports whether the event touches a theme file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), w.registry.extension) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Write)
}

// reload reloads the registry and notifies the callback.
func (w *Watcher) reload() {
	if err := w.registry.Load(); err != nil {
		w.logger.Warn("failed to reload themes", "error", err)
		return
	}

	w.mu.RLock()
	callback := w.onChangeCallback
	w.mu.RUnlock()

	w.logger.Info("themes reloaded", "count", len(w.registry.Themes())-1, "current", w.registry.Current().Name())
	if callback != nil {
		callback(w.registry)
	}
}
