package domain

import (
	"cmp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Span identifies the syntax node a piece of compiled output was produced from.
// The zero value is the detached span, which belongs to no source file.
type Span uint64

// IsDetached reports whether the span belongs to no source file.
func (s Span) IsDetached() bool {
	return s == 0
}

// SpanOffset is a character offset inside the text produced by a span.
type SpanOffset struct {
	Span   Span
	Offset int
}

// CharPosition is a zero-based line and column in a source file.
type CharPosition struct {
	Line   int
	Column int
}

// Compare orders positions by line, then by column.
func (p CharPosition) Compare(o CharPosition) int {
	if c := cmp.Compare(p.Line, o.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Column, o.Column)
}

// SourceLocation is a position in a named source file.
type SourceLocation struct {
	Filepath string
	Pos      CharPosition
}

// ParseSourceLocation parses a location written as FILE:LINE:COLUMN.
// LINE and COLUMN are one-based on input, as editors display them.
func ParseSourceLocation(s string) (SourceLocation, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 {
		return SourceLocation{}, zerr.With(ErrInvalidLocation, "location", s)
	}

	n := len(parts)
	line, err := strconv.Atoi(parts[n-2])
	if err != nil || line < 1 {
		return SourceLocation{}, zerr.With(ErrInvalidLocation, "location", s)
	}
	col, err := strconv.Atoi(parts[n-1])
	if err != nil || col < 1 {
		return SourceLocation{}, zerr.With(ErrInvalidLocation, "location", s)
	}

	file := strings.Join(parts[:n-2], ":")
	if file == "" {
		return SourceLocation{}, zerr.With(ErrInvalidLocation, "location", s)
	}

	return SourceLocation{
		Filepath: file,
		Pos:      CharPosition{Line: line - 1, Column: col - 1},
	}, nil
}

// PagePoint is a resolved point on a page of the compiled document.
type PagePoint struct {
	// Page is the one-based page number.
	Page  int
	Point Point
}

// DocumentPosition is a position in the rendered document, in points.
type DocumentPosition struct {
	Page int     `json:"page"`
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
}

// JumpInfo is a source range a document location maps back to.
// Start and End are nil when that side could not be resolved.
type JumpInfo struct {
	Filepath string
	Start    *CharPosition
	End      *CharPosition
}
