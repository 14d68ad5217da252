package ports

import "go.trai.ch/mist/internal/core/domain"

// ExportStore defines the interface for storing and retrieving export records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ExportStore interface {
	// Get retrieves the last export record for a given task name.
	// Returns nil, nil if not found.
	Get(root, taskName string) (*domain.ExportRecord, error)

	// Put stores the export record.
	Put(root string, record domain.ExportRecord) error
}
