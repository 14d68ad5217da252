// Package vfs overlays unsaved editor content on top of the project files on disk.
package vfs

import (
	"context"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.EditorServer = (*Overlay)(nil)
	_ ports.World        = (*World)(nil)
)

// Overlay holds memory files keyed by their path relative to the project root.
//
// Overlay is safe for concurrent use.
type Overlay struct {
	mu       sync.RWMutex
	root     string
	files    map[string]string
	revision uint64
}

// NewOverlay creates an empty overlay over root.
func NewOverlay(root string) *Overlay {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Overlay{
		root:  filepath.Clean(root),
		files: make(map[string]string),
	}
}

// Root returns the absolute project root.
func (o *Overlay) Root() string {
	return o.root
}

// UpdateMemoryFiles merges files into the overlay. With reset set, every
// previous memory file is dropped first.
func (o *Overlay) UpdateMemoryFiles(_ context.Context, files domain.MemoryFiles, reset bool) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if reset {
		clear(o.files)
	}
	for path, content := range files.Files {
		key, err := o.key(path)
		if err != nil {
			return err
		}
		o.files[key] = content
	}
	o.revision++
	return nil
}

// RemoveShadowFiles drops the named files from the overlay. Unknown files are ignored.
func (o *Overlay) RemoveShadowFiles(_ context.Context, files domain.MemoryFilesShort) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, path := range files.Files {
		key, err := o.key(path)
		if err != nil {
			return err
		}
		delete(o.files, key)
	}
	o.revision++
	return nil
}

// Revision increases with every change to the overlay.
func (o *Overlay) Revision() uint64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.revision
}

// Len returns the number of memory files.
func (o *Overlay) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.files)
}

// Snapshot returns an immutable world compiling entry with the current memory files.
func (o *Overlay) Snapshot(entry string) *World {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return &World{
		entry: domain.EntryState{Root: o.root, Main: filepath.ToSlash(entry)},
		files: maps.Clone(o.files),
	}
}

// key normalizes path to a slash separated path relative to the root.
func (o *Overlay) key(path string) (string, error) {
	return RelPath(o.root, path)
}

// RelPath returns path as a clean, slash separated path relative to root.
// Paths resolving outside root, absolute or relative, are rejected.
func RelPath(root, path string) (string, error) {
	if path == "" {
		return "", zerr.With(domain.ErrFileNotFound, "path", path)
	}
	rel := filepath.Clean(path)
	if filepath.IsAbs(rel) {
		var err error
		if rel, err = filepath.Rel(root, rel); err != nil {
			return "", zerr.With(zerr.With(domain.ErrFileNotFound, "path", path), "root", root)
		}
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.With(domain.ErrFileNotFound, "path", path), "root", root)
	}
	return filepath.ToSlash(rel), nil
}

// World is a point-in-time view of the project: memory files first, then the disk.
type World struct {
	entry domain.EntryState
	files map[string]string
}

// NewWorld creates a world over the files on disk only.
func NewWorld(root, entry string) *World {
	return NewOverlay(root).Snapshot(entry)
}

// Entry implements ports.World.
func (w *World) Entry() domain.EntryState {
	return w.entry
}

// Source implements ports.World.
func (w *World) Source(path string) (string, error) {
	key, err := RelPath(w.entry.Root, path)
	if err != nil {
		return "", err
	}
	if content, ok := w.files[key]; ok {
		return content, nil
	}

	//nolint:gosec // Path is confined to the project root
	data, err := os.ReadFile(filepath.Join(w.entry.Root, filepath.FromSlash(key)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(domain.ErrFileNotFound, "path", key)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileNotFound.Error()), "path", key)
	}
	return string(data), nil
}

// Shadowed reports whether path is served from memory.
func (w *World) Shadowed(path string) bool {
	key, err := RelPath(w.entry.Root, path)
	if err != nil {
		return false
	}
	_, ok := w.files[key]
	return ok
}
