// Package watcher reports changes to project files using fsnotify.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// skippedDirectories are never watched.
var skippedDirectories = map[string]bool{
	".git":             true,
	".jj":              true,
	"node_modules":     true,
	domain.MistDirName: true,
}

const eventBuffer = 100

// Watcher watches a directory tree and reports changed files.
type Watcher struct {
	logger ports.Logger
	events chan ports.WatchEvent

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	stopped   bool
}

// NewWatcher creates a watcher. No file system resources are held until Start.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		events: make(chan ports.WatchEvent, eventBuffer),
	}
}

// Start watches root and every directory below it. Directories created later
// are added as they appear. Events stop when ctx is done or Stop is called.
// A watcher can be started once.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return zerr.With(domain.ErrWatcherStartFailed, "reason", "already started")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	for dir := range directories(root) {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", dir)
		}
	}

	w.fsWatcher = fw
	go w.loop(ctx, fw)
	return nil
}

// Stop releases the watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil || w.stopped {
		return nil
	}
	w.stopped = true
	return w.fsWatcher.Close()
}

// Events yields events until the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			converted, ok := convert(event)
			if !ok {
				continue
			}

			select {
			case w.events <- converted:
			case <-ctx.Done():
				return
			}

			if converted.Operation == ports.OpCreate {
				w.addCreated(fw, event.Name)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

// addCreated starts watching path when it is a new directory.
func (w *Watcher) addCreated(fw *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || skippedDirectories[info.Name()] {
		return
	}
	for dir := range directories(path) {
		if err := fw.Add(dir); err != nil {
			w.logger.Debug("watcher: cannot watch " + dir + ": " + err.Error())
		}
	}
}

// directories yields root and every directory below it that is not skipped.
func directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Unreadable directories are not watched
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && skippedDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func convert(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
