package preview

import (
	"context"

	"go.trai.ch/mist/internal/core/domain"
)

// Request is a message handled by the Actor.
// The set of requests is closed: every variant is dispatched through handler.
type Request interface {
	dispatch(ctx context.Context, h handler)
}

// handler has one method per Request variant.
type handler interface {
	docToSrcJump(ctx context.Context, r DocToSrcJumpResolve)
	changeCursor(ctx context.Context, r ChangeCursorPosition)
	srcToDocJump(ctx context.Context, r SrcToDocJumpResolve)
	syncMemoryFiles(ctx context.Context, r SyncMemoryFiles)
	updateMemoryFiles(ctx context.Context, r UpdateMemoryFiles)
	removeMemoryFiles(ctx context.Context, r RemoveMemoryFiles)
}

// DocToSrcJumpResolve maps a selected range of the rendered document back to the source.
type DocToSrcJumpResolve struct {
	Start domain.SpanOffset
	End   domain.SpanOffset
}

// ChangeCursorPosition moves the rendered cursor to a text cursor of the editor.
// Line and Character are zero-based.
type ChangeCursorPosition struct {
	Filepath  string
	Line      int
	Character int
}

// SrcToDocJumpResolve asks viewers to scroll to a source position.
// Line and Character are zero-based.
type SrcToDocJumpResolve struct {
	Filepath  string
	Line      int
	Character int
}

// SyncMemoryFiles replaces every memory file.
type SyncMemoryFiles struct {
	domain.MemoryFiles
}

// UpdateMemoryFiles merges files into the memory files.
type UpdateMemoryFiles struct {
	domain.MemoryFiles
}

// RemoveMemoryFiles drops memory files by name.
type RemoveMemoryFiles struct {
	domain.MemoryFilesShort
}

func (r DocToSrcJumpResolve) dispatch(ctx context.Context, h handler) { h.docToSrcJump(ctx, r) }

func (r ChangeCursorPosition) dispatch(ctx context.Context, h handler) { h.changeCursor(ctx, r) }

func (r SrcToDocJumpResolve) dispatch(ctx context.Context, h handler) { h.srcToDocJump(ctx, r) }

func (r SyncMemoryFiles) dispatch(ctx context.Context, h handler) { h.syncMemoryFiles(ctx, r) }

func (r UpdateMemoryFiles) dispatch(ctx context.Context, h handler) { h.updateMemoryFiles(ctx, r) }

func (r RemoveMemoryFiles) dispatch(ctx context.Context, h handler) { h.removeMemoryFiles(ctx, r) }

func (r ChangeCursorPosition) location() domain.SourceLocation {
	return domain.SourceLocation{
		Filepath: r.Filepath,
		Pos:      domain.CharPosition{Line: r.Line, Column: r.Character},
	}
}

func (r SrcToDocJumpResolve) location() domain.SourceLocation {
	return domain.SourceLocation{
		Filepath: r.Filepath,
		Pos:      domain.CharPosition{Line: r.Line, Column: r.Character},
	}
}

// EditorRequest is sent to the editor connection.
type EditorRequest struct {
	DocToSrcJump domain.JumpInfo
}

// RenderRequest is broadcast to renderers.
type RenderRequest struct {
	CursorPosition domain.SpanOffset
}

// WebviewRequest is broadcast to viewers.
type WebviewRequest struct {
	SrcToDocJump []domain.DocumentPosition
}
