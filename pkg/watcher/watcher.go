// Package watcher delivers "file created" notifications for one directory.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Handler is called with the path of each newly created file.
type Handler func(path string)

// ErrorHandler is called with errors reported by the underlying watcher.
type ErrorHandler func(err error)

// Watcher watches a single directory, non-recursively, for new files.
// Handlers run on the goroutine that called Run, one event at a time.
type Watcher struct {
	dir       string
	watcher   *fsnotify.Watcher
	onCreate  Handler
	onError   ErrorHandler
	closeOnce sync.Once
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithErrorHandler sets the callback for watcher errors. They are ignored by default.
func WithErrorHandler(h ErrorHandler) Option {
	return func(w *Watcher) {
		w.onError = h
	}
}

// New starts watching dir. Events are not delivered until Run is called.
func New(dir string, onCreate Handler, opts ...Option) (*Watcher, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsWatcher.Add(absDir); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absDir, err)
	}

	w := &Watcher{
		dir:      absDir,
		watcher:  fsWatcher,
		onCreate: onCreate,
		onError:  func(error) {},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Dir returns the absolute path of the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run dispatches events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			info, err := os.Stat(event.Name)
			if err != nil || info.IsDir() {
				continue
			}
			w.onCreate(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				w.onError(err)
			}
		}
	}
}

// Close stops the watcher and releases its resources. Safe to call more than once.
func (w *Watcher) Close() error {
	var closeErr error
	w.closeOnce.Do(func() {
		if err := w.watcher.Close(); err != nil {
			closeErr = fmt.Errorf("failed to close watcher: %w", err)
		}
	})
	return closeErr
}
