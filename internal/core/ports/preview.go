package ports

import (
	"context"

	"go.trai.ch/mist/internal/core/domain"
)

//go:generate mockgen -source=preview.go -destination=mocks/mock_preview.go -package=mocks

// SourceFileServer resolves positions between sources and the compiled document.
type SourceFileServer interface {
	// ResolveSourceSpan returns the span under a source location.
	// It returns nil when no compiled output covers the location.
	ResolveSourceSpan(ctx context.Context, loc domain.SourceLocation) (*domain.SpanOffset, error)

	// ResolveDocumentPosition returns every rendered point that displays a source location.
	ResolveDocumentPosition(ctx context.Context, loc domain.SourceLocation) ([]domain.PagePoint, error)

	// ResolveSourceLocation maps a span back to its source range.
	// With a non-nil offset the range is narrowed to the character at that offset.
	// It returns nil for detached spans.
	ResolveSourceLocation(ctx context.Context, span domain.Span, offset *int) (*domain.JumpInfo, error)
}

// EditorServer applies unsaved editor content to the files seen by the compiler.
type EditorServer interface {
	// UpdateMemoryFiles merges files into the memory overlay.
	// With reset set, every previous memory file is dropped first.
	UpdateMemoryFiles(ctx context.Context, files domain.MemoryFiles, reset bool) error

	// RemoveShadowFiles drops the named files from the memory overlay.
	RemoveShadowFiles(ctx context.Context, files domain.MemoryFilesShort) error
}

// PreviewServer is the client of a preview session.
type PreviewServer interface {
	SourceFileServer
	EditorServer
}
