package domain

import (
	"path/filepath"
	"strings"
)

// EntryState identifies the file a project is compiled from.
type EntryState struct {
	// Root is the project root directory.
	Root string
	// Main is the entry file relative to Root. Files of packages start with "@".
	Main string
}

// IsPackageFile reports whether the entry lives inside a package rather than the project.
func (e EntryState) IsPackageFile() bool {
	return strings.HasPrefix(e.Main, "@")
}

// Path returns the absolute path of the entry file, or false when there is none.
func (e EntryState) Path() (string, bool) {
	if e.Root == "" || e.Main == "" || e.IsPackageFile() {
		return "", false
	}
	root := e.Root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.Join(root, filepath.FromSlash(e.Main)), true
}

// PathPattern is an output path template.
//
// The variables $root, $dir and $name are replaced by the project root, the
// directory of the entry file and the file name of the entry file.
type PathPattern string

// Substitute expands the pattern for the given entry.
// It returns false when the pattern is empty or the entry has no file on disk.
func (p PathPattern) Substitute(entry EntryState) (string, bool) {
	if p == "" {
		return "", false
	}
	path, ok := entry.Path()
	if !ok {
		return "", false
	}
	root := entry.Root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	out := strings.ReplaceAll(string(p), "$root", root)
	out = strings.ReplaceAll(out, "$dir", filepath.Dir(path))
	out = strings.ReplaceAll(out, "$name", filepath.Base(path))

	return filepath.Clean(out), true
}

// WithExtension replaces the extension of path with ext.
func WithExtension(path, ext string) string {
	if ext == "" {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}
