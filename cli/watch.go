package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors often write files in multiple steps.
const debounceDelay = 100 * time.Millisecond

// watchFiles calls run once, then again after every change to the files it
// returned, until ctx is done. Errors of run are printed, not returned.
func watchFiles(ctx context.Context, stderr io.Writer, run func() ([]string, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	rerun := func() {
		files, err := run()
		if err != nil {
			printError(stderr, err.Error())
		}
		// Re-add every file to catch files replaced by atomic saves.
		for _, file := range files {
			if err := watcher.Add(file); err != nil {
				printWarning(stderr, fmt.Sprintf("failed to watch %s: %v", file, err))
			}
		}
	}
	rerun()

	debounce := time.NewTimer(debounceDelay)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(debounceDelay)

		case <-debounce.C:
			rerun()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printWarning(stderr, fmt.Sprintf("file watcher error: %v", err))
		}
	}
}
