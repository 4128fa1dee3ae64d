// Package content keeps file-backed site content fresh: a small fsnotify
// wrapper that re-runs a reload callback whenever the watched file is written
// or replaced.
package content

import (
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a single content file on change. Editors often replace
// files instead of writing in place, so the watch is placed on the parent
// directory and filtered by name.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	reload  func() error
	onError func(error)
	done    chan struct{}
}

// Watch starts watching path and invokes reload on every write/create/rename
// touching it. onError receives reload and watch failures; nil means they are
// dropped.
func Watch(path string, reload func() error, onError func(error)) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("content: watch path is required")
	}
	if reload == nil {
		return nil, errors.New("content: reload callback is required")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	if onError == nil {
		onError = func(error) {}
	}

	w := &Watcher{
		watcher: fsWatcher,
		path:    abs,
		reload:  reload,
		onError: onError,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.matches(event) {
				continue
			}
			if err := w.reload(); err != nil {
				w.onError(err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onError(err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) matches(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return abs == w.path
}

// Close stops the watcher. Safe to call once.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
