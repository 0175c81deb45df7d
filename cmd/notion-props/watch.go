// Re-runs the query each time the configuration file changes.

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle coalesces the burst of events an editor emits on save.
const settle = 200 * time.Millisecond

// watchFile calls fn once, then again after each change of path, until ctx
// is done. Errors returned by fn are logged and do not stop the watch.
//
// The parent directory is watched since editors commonly replace the file
// with a rename.
func watchFile(ctx context.Context, path string, fn func(context.Context) error) error {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	run := func() {
		if err := fn(ctx); err != nil && ctx.Err() == nil {
			slog.ErrorContext(ctx, "Run failed", "err", err)
		}
	}
	run()

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.DebugContext(ctx, "File changed", "path", path, "op", event.Op.String())
			timer.Reset(settle)
		case <-timer.C:
			slog.InfoContext(ctx, "Configuration modified, running again", "path", path)
			run()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.WarnContext(ctx, "Error watching file", "err", err)
		}
	}
}
