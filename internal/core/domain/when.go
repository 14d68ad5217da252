// Package domain contains the core value types of the export engine and the preview actor.
package domain

import "go.trai.ch/zerr"

// TaskWhen describes under which editing event an export must be recomputed.
type TaskWhen string

const (
	// WhenNever disables the export.
	WhenNever TaskWhen = "never"
	// WhenOnType exports on every in-memory edit.
	WhenOnType TaskWhen = "onType"
	// WhenOnSave exports when a file is saved to disk.
	WhenOnSave TaskWhen = "onSave"
	// WhenOnDocumentChange exports when the compiled document differs from the last export.
	WhenOnDocumentChange TaskWhen = "onDocumentChange"
	// WhenOnDocumentHasTitle exports on save, but only documents that declare a title.
	WhenOnDocumentHasTitle TaskWhen = "onDocumentHasTitle"
	// WhenScript exports only when explicitly requested.
	WhenScript TaskWhen = "script"
)

// ParseTaskWhen converts a configuration string into a TaskWhen.
// An empty string means WhenNever.
func ParseTaskWhen(s string) (TaskWhen, error) {
	switch w := TaskWhen(s); w {
	case "":
		return WhenNever, nil
	case WhenNever, WhenOnType, WhenOnSave, WhenOnDocumentChange, WhenOnDocumentHasTitle, WhenScript:
		return w, nil
	default:
		return "", zerr.With(ErrInvalidTaskWhen, "when", s)
	}
}

// ExportSignal records which editing events caused a compilation.
type ExportSignal struct {
	// ByEntryUpdate is set when the entry itself changed or an export was explicitly requested.
	ByEntryUpdate bool
	// ByFsEvents is set when files changed on disk.
	ByFsEvents bool
	// ByMemEvents is set when in-memory (unsaved) files changed.
	ByMemEvents bool
}
