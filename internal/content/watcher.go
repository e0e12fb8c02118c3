package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Watcher reloads a content file into a Store whenever the file changes.
// Content that fails to load or validate is logged and the last good content
// keeps being served.
type Watcher struct {
	fs    afero.Fs
	path  string
	store *Store
}

// NewWatcher creates a Watcher for path. Nothing is watched until Start.
func NewWatcher(fsys afero.Fs, path string, store *Store) *Watcher {
	return &Watcher{fs: fsys, path: path, store: store}
}

// Reload loads and validates the file and, on success, publishes it to the store.
func (w *Watcher) Reload() error {
	c, err := Load(w.fs, w.path)
	if err != nil {
		return err
	}
	if err := Validate(c); err != nil {
		return err
	}
	w.store.Set(c)
	return nil
}

// Start begins watching the directory of the content file. Editors often
// replace files instead of writing them in place, so the directory is watched
// and events are filtered by name. Watching stops when ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go w.watch(ctx, watcher)

	slog.Debug("Started content watcher", "path", w.path)
	return nil
}

func (w *Watcher) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		watcher.Close()
		slog.Info("Content watcher stopped", "path", w.path)
	}()

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.handleChange(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleChange(event fsnotify.Event) {
	slog.Info("Content file changed, reloading", "event", event.Op.String(), "path", event.Name)
	if err := w.Reload(); err != nil {
		slog.Error("Failed to reload content, keeping previous version", "path", w.path, "error", err)
		return
	}
	slog.Info("Reloaded content", "path", w.path)
}
