package domain

import (
	"encoding/binary"
	"iter"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Point is a position in typographic points.
type Point struct {
	X float64
	Y float64
}

// PagedDocument is a compiled, layout-resolved document organized into pages.
// It must not be modified once the compiler has returned it.
type PagedDocument struct {
	// Title is the document title, empty when the document declares none.
	Title string
	Pages []Page
}

// Page is a single page of a PagedDocument.
type Page struct {
	Width  float64
	Height float64
	Frame  Frame
}

// Frame is a positioned container of layout items.
type Frame struct {
	Items []FrameItem
}

// FrameItem is one element of a frame. The set of variants is closed.
type FrameItem interface {
	isFrameItem()
}

// TextItem is a run of shaped text.
type TextItem struct {
	Pos  Point
	Size float64
	Text string
	// Span is the source location the text was produced from.
	Span SpanOffset
}

// GroupItem is a nested frame positioned inside its parent.
type GroupItem struct {
	Pos   Point
	Frame Frame
}

// ShapeItem is a geometric shape.
type ShapeItem struct {
	Pos    Point
	Width  float64
	Height float64
}

// ImageItem is a raster or vector image.
type ImageItem struct {
	Pos    Point
	Width  float64
	Height float64
	Source string
}

// LinkItem is a clickable area.
type LinkItem struct {
	Pos Point
	URL string
}

func (TextItem) isFrameItem()  {}
func (GroupItem) isFrameItem() {}
func (ShapeItem) isFrameItem() {}
func (ImageItem) isFrameItem() {}
func (LinkItem) isFrameItem()  {}

// PositionedText is a text item together with its page and absolute position.
type PositionedText struct {
	// Page is the zero-based page index.
	Page int
	Pos  Point
	Item TextItem
}

// Texts yields every text item in document order, with positions resolved
// against all enclosing groups.
func (d *PagedDocument) Texts() iter.Seq[PositionedText] {
	return func(yield func(PositionedText) bool) {
		for i := range d.Pages {
			if !walkFrame(&d.Pages[i].Frame, i, Point{}, yield) {
				return
			}
		}
	}
}

func walkFrame(f *Frame, page int, origin Point, yield func(PositionedText) bool) bool {
	for _, item := range f.Items {
		switch it := item.(type) {
		case TextItem:
			pos := Point{X: origin.X + it.Pos.X, Y: origin.Y + it.Pos.Y}
			if !yield(PositionedText{Page: page, Pos: pos, Item: it}) {
				return false
			}
		case GroupItem:
			inner := Point{X: origin.X + it.Pos.X, Y: origin.Y + it.Pos.Y}
			if !walkFrame(&it.Frame, page, inner, yield) {
				return false
			}
		}
	}
	return true
}

// Fingerprint returns a 64-bit hash of the document content and layout.
// Two documents with equal fingerprints render identically for export purposes.
// A nil document has fingerprint zero.
func (d *PagedDocument) Fingerprint() uint64 {
	if d == nil {
		return 0
	}
	h := xxhash.New()
	fp := fingerprinter{h: h}
	fp.str(d.Title)
	fp.u64(uint64(len(d.Pages)))
	for i := range d.Pages {
		p := &d.Pages[i]
		fp.f64(p.Width)
		fp.f64(p.Height)
		fp.frame(&p.Frame)
	}
	return h.Sum64()
}

type fingerprinter struct {
	h   *xxhash.Digest
	buf [8]byte
}

func (f *fingerprinter) u64(v uint64) {
	binary.LittleEndian.PutUint64(f.buf[:], v)
	_, _ = f.h.Write(f.buf[:])
}

func (f *fingerprinter) f64(v float64) {
	f.u64(math.Float64bits(v))
}

func (f *fingerprinter) str(s string) {
	f.u64(uint64(len(s)))
	_, _ = f.h.WriteString(s)
}

func (f *fingerprinter) point(p Point) {
	f.f64(p.X)
	f.f64(p.Y)
}

func (f *fingerprinter) frame(fr *Frame) {
	f.u64(uint64(len(fr.Items)))
	for _, item := range fr.Items {
		switch it := item.(type) {
		case TextItem:
			f.u64(1)
			f.point(it.Pos)
			f.f64(it.Size)
			f.str(it.Text)
		case GroupItem:
			f.u64(2)
			f.point(it.Pos)
			f.frame(&it.Frame)
		case ShapeItem:
			f.u64(3)
			f.point(it.Pos)
			f.f64(it.Width)
			f.f64(it.Height)
		case ImageItem:
			f.u64(4)
			f.point(it.Pos)
			f.f64(it.Width)
			f.f64(it.Height)
			f.str(it.Source)
		case LinkItem:
			f.u64(5)
			f.point(it.Pos)
			f.str(it.URL)
		}
	}
}
