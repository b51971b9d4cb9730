// Package watch re-triggers builds when content files change.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	sterrors "git.home.luguber.info/inful/sitetools/internal/errors"
)

// Run watches root (recursively) and invokes rebuild once per settled burst
// of changes, until ctx is cancelled. Errors from rebuild are logged, not
// fatal: the watch loop keeps running so the next save can succeed.
func Run(ctx context.Context, root string, cfg DebounceConfig, rebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return sterrors.Wrap(err, sterrors.CategoryFileSystem, sterrors.SeverityFatal, "failed to create watcher")
	}
	defer watcher.Close()

	if err := addRecursive(watcher, root); err != nil {
		return err
	}

	debouncer, err := NewDebouncer(cfg)
	if err != nil {
		return err
	}

	changes := make(chan string, 64)
	go debouncer.Run(ctx, changes, func(last string) {
		slog.Info("Change detected, rebuilding", "trigger", last)
		if err := rebuild(); err != nil {
			slog.Error("Rebuild failed", "error", err)
		}
	})

	slog.Info("Watching for changes", "root", root)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				// New directories must be added to the watch set.
				if err := addRecursive(watcher, event.Name); err != nil {
					slog.Debug("Could not watch new path", "path", event.Name, "error", err)
				}
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
				event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
				select {
				case changes <- event.Name:
				default:
					// Burst overflow; the debouncer will fire anyway.
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}

// addRecursive registers path and every directory below it. Non-directory
// paths are ignored.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil //nolint:nilerr // vanished paths are fine during bursts
		}
		return watcher.Add(path)
	})
}
