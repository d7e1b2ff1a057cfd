package stopfile

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher wakes the activity loop the moment the stop file appears. It
// watches the parent directory because the file usually does not exist yet.
// The loop's one-second poll remains the safety net for missed watches, so
// watch errors are swallowed rather than surfaced.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	notifyCh  chan struct{}
	done      chan struct{}
}

// New creates a watcher for the stop file at path.
func New(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		path:      path,
		notifyCh:  make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Notify returns the channel that receives a wakeup when the stop file
// appears. Signals coalesce; receivers recheck the file themselves.
func (w *Watcher) Notify() <-chan struct{} {
	return w.notifyCh
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Stop stops watching.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// handleEvent filters directory events down to the stop file itself.
// Create covers a plain touch, Rename covers atomic write-then-rename, and
// Write covers appends to an existing file.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return
	}
	select {
	case w.notifyCh <- struct{}{}:
	default:
	}
}
