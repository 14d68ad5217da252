// Package cas stores the record of the last export of every task.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ExportStore with one JSON file per task under
// <root>/.mist/store.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the record of taskName, or nil when the task was never exported.
func (s *Store) Get(root, taskName string) (*domain.ExportRecord, error) {
	path := s.filename(root, taskName)
	//nolint:gosec // Path is built from the project root and a hashed file name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "task", taskName)
	}

	var rec domain.ExportRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "task", taskName)
	}
	return &rec, nil
}

// Put replaces the record of rec.Task.
func (s *Store) Put(root string, rec domain.ExportRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	path := s.filename(root, rec.Task)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	// Write to a sibling file first so readers never see a partial record.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "task", rec.Task)
	}
	if err := os.Rename(tmp, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "task", rec.Task)
	}
	return nil
}

func (s *Store) filename(root, taskName string) string {
	name := strconv.FormatUint(xxhash.Sum64String(taskName), 16) + ".json"
	return filepath.Join(root, domain.DefaultStorePath(), name)
}
