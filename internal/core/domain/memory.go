package domain

import (
	"maps"
	"slices"
)

// MemoryFiles maps file paths to unsaved editor content.
type MemoryFiles struct {
	Files map[string]string
}

// Paths returns the file paths in sorted order.
func (m MemoryFiles) Paths() []string {
	return slices.Sorted(maps.Keys(m.Files))
}

// MemoryFilesShort names memory files without their content.
type MemoryFilesShort struct {
	Files []string
}

// Severity is the severity of a diagnostic.
type Severity string

const (
	// SeverityError marks diagnostics that prevent a document from being produced.
	SeverityError Severity = "error"
	// SeverityWarning marks diagnostics that do not prevent compilation.
	SeverityWarning Severity = "warning"
)

// Diagnostic is a message reported by the compiler about a source location.
type Diagnostic struct {
	Severity Severity
	Location SourceLocation
	Message  string
}
