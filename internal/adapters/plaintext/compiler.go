package plaintext

import (
	"context"

	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
)

// Page geometry in typographic points. Pages are A4 with uniform margins.
const (
	PageWidth  = 595.28
	PageHeight = 841.89
	Margin     = 72.0

	bodySize   = 11.0
	lineHeight = 14.4
	// advance is the width of one character of the monospaced face, relative to its size.
	advance = 0.6
)

var headingSizes = []float64{20, 16, 13}

var (
	_ ports.Compiler          = (*Compiler)(nil)
	_ ports.MarkdownConverter = (*Compiler)(nil)
)

// Compiler lays out plain-text sources into pages.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile implements ports.Compiler.
func (c *Compiler) Compile(_ context.Context, world ports.World) (*domain.PagedDocument, []domain.Diagnostic, error) {
	src, err := parse(world)
	if err != nil {
		return nil, nil, err
	}
	if src.hasErrors() {
		return nil, src.diagnostics, nil
	}
	return layout(src).doc, src.diagnostics, nil
}

// Check implements ports.Compiler.
func (c *Compiler) Check(_ context.Context, world ports.World) ([]domain.Diagnostic, error) {
	src, err := parse(world)
	if err != nil {
		return nil, err
	}
	return src.diagnostics, nil
}

// placement is where a source line ended up in the document.
type placement struct {
	line line
	// page is the zero-based page index.
	page int
	// pos is the absolute position of the text baseline origin.
	pos  domain.Point
	size float64
}

type laidOut struct {
	doc        *domain.PagedDocument
	files      []string
	placements []placement
}

func fontSize(l line) float64 {
	if l.heading > 0 {
		return headingSizes[min(l.heading, len(headingSizes))-1]
	}
	return bodySize
}

// layout places one source line per slot. Headings take two slots.
func layout(src *source) laidOut {
	out := laidOut{doc: &domain.PagedDocument{Title: src.title}, files: src.files}
	usable := PageHeight - 2*Margin
	slotsPerPage := int(usable / lineHeight)

	var body *domain.Frame
	slot := slotsPerPage
	newPage := func() {
		out.doc.Pages = append(out.doc.Pages, domain.Page{Width: PageWidth, Height: PageHeight})
		body = &domain.Frame{}
		slot = 0
	}
	flush := func() {
		if body != nil && len(out.doc.Pages) > 0 {
			page := &out.doc.Pages[len(out.doc.Pages)-1]
			page.Frame.Items = append(page.Frame.Items, domain.GroupItem{
				Pos:   domain.Point{X: Margin, Y: Margin},
				Frame: *body,
			})
		}
	}

	for _, l := range src.lines {
		slots := 1
		if l.heading > 0 {
			slots = 2
		}
		if slot+slots > slotsPerPage {
			flush()
			newPage()
		}
		if l.blank() {
			slot++
			continue
		}

		size := fontSize(l)
		rel := domain.Point{
			X: float64(l.col) * bodySize * advance,
			Y: float64(slot+slots)*lineHeight - (lineHeight - size),
		}
		body.Items = append(body.Items, domain.TextItem{
			Pos:  rel,
			Size: size,
			Text: l.text,
			Span: domain.SpanOffset{Span: l.span()},
		})
		if l.heading == 1 {
			body.Items = append(body.Items, domain.ShapeItem{
				Pos:    domain.Point{X: rel.X, Y: rel.Y + 4},
				Width:  PageWidth - 2*Margin - rel.X,
				Height: 0.5,
			})
		}

		out.placements = append(out.placements, placement{
			line: l,
			page: len(out.doc.Pages) - 1,
			pos:  domain.Point{X: Margin + rel.X, Y: Margin + rel.Y},
			size: size,
		})
		slot += slots
	}

	if len(out.doc.Pages) == 0 {
		newPage()
	}
	flush()

	return out
}
