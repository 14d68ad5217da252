package ports

import (
	"context"

	"go.trai.ch/mist/internal/core/domain"
)

//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks

// World is an immutable view of the project files used for one compilation.
type World interface {
	// Entry returns the entry the world compiles.
	Entry() domain.EntryState
	// Source returns the content of a file relative to the project root.
	// Unsaved memory content takes precedence over the file on disk.
	Source(path string) (string, error)
}

// Compiler turns a world into a paged document.
type Compiler interface {
	// Compile lays out the entry of the world into pages.
	// A nil document with error diagnostics means the source does not compile;
	// the error is reserved for failures to access the world.
	Compile(ctx context.Context, world World) (*domain.PagedDocument, []domain.Diagnostic, error)
	// Check reports diagnostics without laying out pages.
	Check(ctx context.Context, world World) ([]domain.Diagnostic, error)
}

// MarkdownConverter converts the source of a world to markdown.
type MarkdownConverter interface {
	Convert(ctx context.Context, world World) (string, error)
}

// PdfEncoder encodes a paged document as a portable document.
type PdfEncoder interface {
	EncodePdf(ctx context.Context, doc *domain.PagedDocument, task *domain.ExportPdfTask) ([]byte, error)
}

// PngEncoder encodes the pages of a document as images.
type PngEncoder interface {
	EncodePng(ctx context.Context, doc *domain.PagedDocument, task *domain.ExportPngTask) ([]byte, error)
}

// SvgEncoder encodes the pages of a document as vector graphics.
type SvgEncoder interface {
	EncodeSvg(ctx context.Context, doc *domain.PagedDocument, task *domain.ExportSvgTask) (string, error)
}
