package export

import (
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/engine/graph"
)

// NeedsRun reports whether an export guarded by when must run for snap.
// doc is the current document, or nil when it is not known yet.
// Whenever the answer cannot be decided the export runs.
func NeedsRun(snap graph.Snapshot, when domain.TaskWhen, doc *domain.PagedDocument) bool {
	if when == domain.WhenNever {
		return false
	}
	if doc == nil {
		return true
	}

	signal := snap.Signal
	if signal.ByEntryUpdate {
		return true
	}

	switch when {
	case domain.WhenOnType:
		return signal.ByMemEvents
	case domain.WhenOnSave:
		return signal.ByFsEvents
	case domain.WhenScript:
		return signal.ByEntryUpdate
	case domain.WhenOnDocumentHasTitle:
		return signal.ByFsEvents && doc.Title != ""
	case domain.WhenOnDocumentChange:
		if snap.LastExported == 0 {
			return true
		}
		return doc.Fingerprint() != snap.LastExported
	default:
		return true
	}
}
