// Package watch reruns a full build whenever the workbook changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ppiankov/rulegen/internal/logging"
)

// Watcher follows a single file. It watches the parent directory because
// spreadsheet editors save by replacing the file.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *slog.Logger
	ready    chan struct{} // closed once the directory is watched
}

// New creates a watcher for path. Bursts of events closer together than
// debounce trigger a single rebuild.
func New(path string, debounce time.Duration) *Watcher {
	return &Watcher{
		path:     path,
		debounce: debounce,
		log:      logging.New("watch"),
		ready:    make(chan struct{}),
	}
}

// Run blocks until ctx is done, calling rebuild after each change. Rebuild
// errors are logged and watching continues; the workbook may be mid-save.
func (w *Watcher) Run(ctx context.Context, rebuild func(context.Context) error) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	close(w.ready)
	w.log.Info("watching workbook", slog.String("path", target))

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(evt.Name) != target || evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("workbook changed", slog.String("op", evt.Op.String()))
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := rebuild(ctx); err != nil {
				w.log.Error("rebuild failed", slog.String("error", err.Error()))
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", slog.String("error", err.Error()))
		}
	}
}
