package store

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Event describes an on-disk change to one of the wallet files.
type Event struct {
	Record Record
	Path   string
	Op     fsnotify.Op
}

// Watch reports changes to the keystore and address files, including ones
// made by other processes, until ctx is done. The directory is watched
// rather than the files so renames and first-time creates are seen.
func (s *Store) Watch(ctx context.Context, fn func(Event)) error {
	dir := s.Dir()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return err
	}

	names := map[string]Record{
		Keystore.FileName(): Keystore,
		Address.FileName():  Address,
	}

	go func() {
		defer watcher.Close()
		slog.Debug("wallet watcher loop started", "dir", dir)
		for {
			select {
			case <-ctx.Done():
				slog.Debug("wallet watcher stopped", "dir", dir)
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				record, tracked := names[filepath.Base(event.Name)]
				if !tracked {
					continue
				}
				// chmod-only noise
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				fn(Event{Record: record, Path: event.Name, Op: event.Op})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("wallet watcher error", "dir", dir, "error", err)
			}
		}
	}()

	return nil
}
