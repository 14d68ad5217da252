package plaintext

import (
	"context"
	"sync"
	"unicode/utf8"

	"go.trai.ch/mist/internal/adapters/vfs"
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
)

var _ ports.PreviewServer = (*Server)(nil)

// Server resolves positions between plain-text sources and their layout.
// Memory files applied through the embedded overlay take effect on the next
// resolution.
type Server struct {
	*vfs.Overlay
	entry string

	mu       sync.Mutex
	revision uint64
	cached   *laidOut
}

// NewServer creates a server compiling entry from overlay.
func NewServer(overlay *vfs.Overlay, entry string) *Server {
	return &Server{Overlay: overlay, entry: entry}
}

// current returns the layout of the latest overlay revision.
func (s *Server) current() (*laidOut, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rev := s.Revision()
	if s.cached != nil && s.revision == rev {
		return s.cached, nil
	}

	src, err := parse(s.Snapshot(s.entry))
	if err != nil {
		return nil, err
	}
	out := layout(src)
	s.cached, s.revision = &out, rev
	return s.cached, nil
}

// matching yields the placements of the source line at loc.
func (s *Server) matching(loc domain.SourceLocation) ([]placement, error) {
	name, err := vfs.RelPath(s.Root(), loc.Filepath)
	if err != nil {
		return nil, nil //nolint:nilerr // Files outside the project are never rendered
	}
	out, err := s.current()
	if err != nil {
		return nil, err
	}

	var found []placement
	for _, p := range out.placements {
		if out.files[p.line.file] == name && p.line.number == loc.Pos.Line {
			found = append(found, p)
		}
	}
	return found, nil
}

// ResolveSourceSpan implements ports.SourceFileServer.
func (s *Server) ResolveSourceSpan(_ context.Context, loc domain.SourceLocation) (*domain.SpanOffset, error) {
	found, err := s.matching(loc)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	l := found[0].line
	offset := min(max(loc.Pos.Column-l.col, 0), l.end()-l.col)
	return &domain.SpanOffset{Span: l.span(), Offset: offset}, nil
}

// ResolveDocumentPosition implements ports.SourceFileServer.
func (s *Server) ResolveDocumentPosition(_ context.Context, loc domain.SourceLocation) ([]domain.PagePoint, error) {
	found, err := s.matching(loc)
	if err != nil {
		return nil, err
	}

	points := make([]domain.PagePoint, 0, len(found))
	for _, p := range found {
		offset := min(max(loc.Pos.Column-p.line.col, 0), p.line.end()-p.line.col)
		points = append(points, domain.PagePoint{
			Page: p.page + 1,
			Point: domain.Point{
				X: p.pos.X + float64(offset)*p.size*advance,
				Y: p.pos.Y,
			},
		})
	}
	return points, nil
}

// ResolveSourceLocation implements ports.SourceFileServer.
func (s *Server) ResolveSourceLocation(_ context.Context, span domain.Span, offset *int) (*domain.JumpInfo, error) {
	if span.IsDetached() {
		return nil, nil
	}
	out, err := s.current()
	if err != nil {
		return nil, err
	}

	file, number := decodeSpan(span)
	for _, p := range out.placements {
		l := p.line
		if l.file != file || l.number != number {
			continue
		}
		info := &domain.JumpInfo{Filepath: out.files[file]}
		if offset == nil {
			info.Start = &domain.CharPosition{Line: number, Column: l.col}
			info.End = &domain.CharPosition{Line: number, Column: l.end()}
			return info, nil
		}
		col := l.col + min(max(*offset, 0), utf8.RuneCountInString(l.text))
		info.Start = &domain.CharPosition{Line: number, Column: col}
		info.End = &domain.CharPosition{Line: number, Column: col}
		return info, nil
	}
	return nil, nil
}
