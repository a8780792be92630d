// Package watch triggers full rebuilds when the source tree changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docfanout/internal/logfields"
)

// RebuildFunc performs one full build. Errors are logged, not fatal: the
// watcher keeps running so the next save can fix the problem.
type RebuildFunc func() error

// Watcher monitors a source tree and runs a debounced rebuild on changes.
type Watcher struct {
	srcRoot      string
	rebuild      RebuildFunc
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
}

// New creates a watcher over srcRoot.
func New(srcRoot string, rebuild RebuildFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absRoot, err := filepath.Abs(srcRoot)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to resolve source path: %w", err)
	}

	return &Watcher{
		srcRoot:      absRoot,
		rebuild:      rebuild,
		watcher:      fsw,
		debounceTime: 2 * time.Second, // Debounce rapid file changes
	}, nil
}

// Run watches until ctx is canceled. It blocks.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		_ = w.watcher.Close()
	}()

	// fsnotify does not recurse; register every directory in the tree.
	if err := w.addDirs(w.srcRoot); err != nil {
		return err
	}
	slog.Info("Watching source tree for changes", logfields.Path(w.srcRoot))

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounceTime, func() {
			select {
			case pending <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			// New directories must be registered before their files change.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addDirs(event.Name); err != nil {
						slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
					}
				}
			}
			slog.Debug("Source change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))

		case <-pending:
			slog.Info("Source changed, rebuilding")
			if err := w.rebuild(); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

func (w *Watcher) addDirs(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
		return nil
	})
}
