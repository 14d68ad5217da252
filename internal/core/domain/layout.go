package domain

import (
	"path/filepath"
	"time"
)

const (
	// MistDirName is the name of the internal state directory.
	MistDirName = ".mist"

	// StoreDirName is the name of the export record store directory.
	StoreDirName = "store"

	// MistFileName is the name of the project configuration file.
	MistFileName = "mist.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultMistPath returns the default root directory for mist metadata.
func DefaultMistPath() string {
	return MistDirName
}

// DefaultStorePath returns the default path for the export record store.
// It joins .mist and store.
func DefaultStorePath() string {
	return filepath.Join(MistDirName, StoreDirName)
}

// ExportRecord describes the last artifact written for a task.
type ExportRecord struct {
	Task        string    `json:"task"`
	Path        string    `json:"path"`
	Fingerprint uint64    `json:"fingerprint"`
	Timestamp   time.Time `json:"timestamp"`
}
