// Package watch follows the snippet directory and reports changes to
// snippet files.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/snipmaker/internal/snippet"
)

// Event kinds.
const (
	KindCreated = "created"
	KindUpdated = "updated"
	KindDeleted = "deleted"
)

// EventCallback is called for each change to a snippet file. name is the
// base file name.
type EventCallback func(kind string, name string)

// Watch starts an fsnotify watcher on dir and reports snippet file events
// until ctx is cancelled. The directory is created if it does not exist.
// Renames are reported as a deletion of the old name; the new name arrives
// as a separate creation.
func Watch(ctx context.Context, dir string, logger *slog.Logger, cb EventCallback) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("watch: mkdir: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	logger.Info("watcher: started", slog.String("dir", dir))

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			if filepath.Dir(ev.Name) != filepath.Clean(dir) || !strings.HasSuffix(name, snippet.Extension) {
				continue
			}

			var kind string
			switch {
			case ev.Op&fsnotify.Create != 0:
				if isDir(ev.Name) {
					continue
				}
				kind = KindCreated
			case ev.Op&fsnotify.Write != 0:
				kind = KindUpdated
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				kind = KindDeleted
			default:
				continue
			}
			logger.Debug("watcher: event", slog.String("name", name), slog.String("op", kind))
			if cb != nil {
				cb(kind, name)
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
