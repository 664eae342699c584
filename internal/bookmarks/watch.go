package bookmarks

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/skiffsh/skiff/internal/log"
)

// Watcher signals when the bookmark file changes on disk, so edits
// made by another skiff process show up without a restart. Events are
// coalesced: at most one pending signal at a time.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}
	target  string
}

// NewWatcher watches the directory containing the store file. Watching
// the directory rather than the file survives rename-based saves.
func NewWatcher(storePath string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(storePath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		target:  filepath.Base(storePath),
	}
	go w.run()
	return w, nil
}

// Events returns the change-signal channel.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() {
	close(w.done)
	_ = w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.signal()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("bookmarks: watcher error: %v", err)
		}
	}
}

func (w *Watcher) signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}
