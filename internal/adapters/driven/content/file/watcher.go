package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/canon-labs/scriptura-cli/internal/logger"
)

// rebuildInterval bounds how often file changes may trigger a rebuild.
// Editors fire bursts of write events for a single save.
const rebuildInterval = 2 * time.Second

// Watcher watches a corpus file and invokes onChange when it is
// written or replaced. Change bursts are rate-limited so one save
// triggers at most one rebuild per interval.
type Watcher struct {
	path     string
	onChange func()
	limiter  *rate.Limiter
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a watcher for the corpus file at path.
// The parent directory is watched, not the file itself, so atomic
// rename-based saves are still observed.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:     path,
		onChange: onChange,
		limiter:  rate.NewLimiter(rate.Every(rebuildInterval), 1),
		fsw:      fsw,
	}, nil
}

// Run processes file events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.matches(event) {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			logger.Info("Corpus changed (%s), rebuilding index", event.Op)
			w.onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// Close stops the underlying file watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create)
}
