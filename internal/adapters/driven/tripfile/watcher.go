package tripfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tripdeck-labs/tripdeck-cli/internal/logger"
)

// debounceDelay is how long to wait for more changes before firing.
// Editors often write a file in several operations.
const debounceDelay = 300 * time.Millisecond

// Watch observes the catalog file and calls onChange after it is
// written or recreated. The watcher runs until ctx is cancelled; no
// timer or goroutine outlives it. Watching the parent directory
// rather than the file itself survives rename-based saves.
func Watch(ctx context.Context, path string, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return err
	}

	go func() {
		defer fsw.Close()

		var debounce *time.Timer
		defer func() {
			if debounce != nil {
				debounce.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, onChange)

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watching %s: %v", path, err)
			}
		}
	}()

	return nil
}
