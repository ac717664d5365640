package content

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the content file at path whenever it is written, created or
// renamed over, and hands every successfully parsed result to fn. A broken
// edit is logged and the previous content stays in use. Watch blocks until ctx
// is done.
func Watch(ctx context.Context, path string, fn func(*Content)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files on save, so watch the directory.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
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
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			c, err := Load(path)
			if err != nil {
				log.Printf("content: reload skipped: %v", err)
				continue
			}
			log.Printf("content: reloaded %s", path)
			fn(c)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("content: watch error: %v", err)
		}
	}
}
