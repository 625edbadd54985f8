package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to a fixed set of files.
// Directories are watched rather than files so editors that replace a file
// on save are still seen.
type Watcher struct {
	// Changes receives the cleaned path of each modified file. It is buffered
	// and a burst of writes to the same file may be reported once.
	Changes chan string

	fsw   *fsnotify.Watcher
	files map[string]bool
	done  chan struct{}
}

// Watch starts watching paths until ctx is cancelled or Close is called
func Watch(ctx context.Context, paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		Changes: make(chan string, 8),
		fsw:     fsw,
		files:   make(map[string]bool),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	go w.loop(ctx)
	return w, nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			w.fsw.Close()
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			select {
			case w.Changes <- name:
			default:
				// Already a pending notification; the reader will pick up the latest content
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			fmt.Printf("Warning: file watcher error: %v\n", err)
		}
	}
}

// Close stops watching and waits for the watcher goroutine to exit
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
