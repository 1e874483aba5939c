package prefs

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-errors/errors"
	"github.com/mcpconf/cli/internal/utils"
)

const (
	debounceDuration = 100 * time.Millisecond
	reloadEvents     = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
)

// Watch calls onChange after the file at path is written, replaced or
// removed, until ctx is done. Bursts of events within the debounce window
// trigger a single call.
func Watch(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()
	// Editors usually save by renaming a temp file, so watch the directory
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return errors.Errorf("failed to watch directory %s: %w", dir, err)
	}
	utils.Debug("Watching preference file: %s", path)
	timer := time.NewTimer(debounceDuration)
	if !timer.Stop() {
		<-timer.C
	}
	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) == target && event.Op&reloadEvents != 0 {
				timer.Reset(debounceDuration)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Errorf("failed to watch preferences: %w", err)
		case <-timer.C:
			onChange()
		}
	}
}
