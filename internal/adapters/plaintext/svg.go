package plaintext

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
)

var _ ports.SvgEncoder = (*SvgEncoder)(nil)

// SvgEncoder renders paged documents as a single SVG with the pages stacked vertically.
type SvgEncoder struct{}

// NewSvgEncoder creates a new SvgEncoder.
func NewSvgEncoder() *SvgEncoder {
	return &SvgEncoder{}
}

// EncodeSvg implements ports.SvgEncoder.
func (e *SvgEncoder) EncodeSvg(_ context.Context, doc *domain.PagedDocument, _ *domain.ExportSvgTask) (string, error) {
	width, height := 0.0, 0.0
	for _, p := range doc.Pages {
		width = max(width, p.Width)
		height += p.Height
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(width), num(height), num(width), num(height))
	if doc.Title != "" {
		b.WriteString("<title>")
		_ = xml.EscapeText(&b, []byte(doc.Title))
		b.WriteString("</title>\n")
	}

	y := 0.0
	for _, p := range doc.Pages {
		fmt.Fprintf(&b, `<g transform="translate(0 %s)">`+"\n", num(y))
		fmt.Fprintf(&b, `<rect width="%s" height="%s" fill="white"/>`+"\n", num(p.Width), num(p.Height))
		writeFrame(&b, &p.Frame)
		b.WriteString("</g>\n")
		y += p.Height
	}

	b.WriteString("</svg>\n")
	return b.String(), nil
}

func writeFrame(b *strings.Builder, f *domain.Frame) {
	for _, item := range f.Items {
		switch it := item.(type) {
		case domain.TextItem:
			fmt.Fprintf(b, `<text x="%s" y="%s" font-family="monospace" font-size="%s">`,
				num(it.Pos.X), num(it.Pos.Y), num(it.Size))
			_ = xml.EscapeText(b, []byte(it.Text))
			b.WriteString("</text>\n")
		case domain.GroupItem:
			fmt.Fprintf(b, `<g transform="translate(%s %s)">`+"\n", num(it.Pos.X), num(it.Pos.Y))
			writeFrame(b, &it.Frame)
			b.WriteString("</g>\n")
		case domain.ShapeItem:
			fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s"/>`+"\n",
				num(it.Pos.X), num(it.Pos.Y), num(it.Width), num(it.Height))
		case domain.ImageItem:
			fmt.Fprintf(b, `<image x="%s" y="%s" width="%s" height="%s" href="%s"/>`+"\n",
				num(it.Pos.X), num(it.Pos.Y), num(it.Width), num(it.Height), attr(it.Source))
		case domain.LinkItem:
			fmt.Fprintf(b, `<a href="%s"><circle cx="%s" cy="%s" r="0"/></a>`+"\n",
				attr(it.URL), num(it.Pos.X), num(it.Pos.Y))
		}
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func attr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
