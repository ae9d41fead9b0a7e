// Package watch reports debounced changes to a fixed set of files.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/exbotanical/ysdocs/internal/logfields"
)

// Handler is invoked once per quiet period with the last file that changed.
type Handler func(ctx context.Context, path string) error

// Watcher monitors files through their parent directories, which survives
// editors and writers that replace files by rename.
type Watcher struct {
	files    map[string]struct{}
	dirs     []string
	handler  Handler
	debounce time.Duration
	watcher  *fsnotify.Watcher
	once     sync.Once
}

// New creates a watcher for paths. Parent directories must exist when Run is called.
func New(handler Handler, debounce time.Duration, paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no paths to watch")
	}

	files := make(map[string]struct{}, len(paths))
	seen := make(map[string]struct{}, len(paths))
	var dirs []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		files:    files,
		dirs:     dirs,
		handler:  handler,
		debounce: debounce,
		watcher:  fw,
	}, nil
}

// Run blocks until ctx is cancelled. Handler errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}
	slog.Info("Watching for changes", logfields.Entries(len(w.files)))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var last string
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("File change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			last = event.Name
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", logfields.Error(err))

		case <-timer.C:
			if err := w.handler(ctx, last); err != nil {
				slog.Error("Change handler failed", logfields.Path(last), logfields.Error(err))
			}
		}
	}
}

// Close releases the underlying watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() { err = w.watcher.Close() })
	return err
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[name]
	return ok
}
