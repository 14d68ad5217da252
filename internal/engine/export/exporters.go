package export

import (
	"context"
	"strings"

	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/mist/internal/engine/graph"
	"go.trai.ch/zerr"
	"golang.org/x/text/unicode/norm"
)

// TextExport extracts the full text of a document.
type TextExport struct{}

// Run implements ExportComputation. The configuration is not used.
func (TextExport) Run(_ context.Context, _ *graph.Graph, doc *domain.PagedDocument, _ *domain.ExportTextTask) (string, error) {
	return FullText(doc), nil
}

// FullText concatenates every text item of doc in document order, in NFC form.
// Shapes, images and links contribute nothing.
func FullText(doc *domain.PagedDocument) string {
	if doc == nil {
		return ""
	}
	var b strings.Builder
	for t := range doc.Texts() {
		b.WriteString(t.Item.Text)
	}
	return norm.NFC.String(b.String())
}

// TypliteMdExportKey converts the sources of the snapshot to markdown.
var TypliteMdExportKey = graph.NewKey("markdown export", computeMarkdown)

func computeMarkdown(ctx context.Context, g *graph.Graph) (string, error) {
	features, err := graph.MustGet(g, FeaturesKey)
	if err != nil {
		return "", err
	}
	if features.Markdown == nil {
		return "", zerr.With(domain.ErrEncoderUnavailable, "kind", string(domain.KindExportMarkdown))
	}

	md, err := features.Markdown.Convert(ctx, g.Snapshot().World)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConversionFailed.Error())
	}
	return md, nil
}

// PdfExport encodes a document as a portable document.
type PdfExport struct {
	Encoder ports.PdfEncoder
}

// Run implements ExportComputation.
func (e PdfExport) Run(ctx context.Context, _ *graph.Graph, doc *domain.PagedDocument, task *domain.ExportPdfTask) ([]byte, error) {
	if e.Encoder == nil {
		return nil, zerr.With(domain.ErrEncoderUnavailable, "kind", string(domain.KindExportPdf))
	}
	return e.Encoder.EncodePdf(ctx, doc, task)
}

// PngExport encodes the pages of a document as images.
type PngExport struct {
	Encoder ports.PngEncoder
}

// Run implements ExportComputation.
func (e PngExport) Run(ctx context.Context, _ *graph.Graph, doc *domain.PagedDocument, task *domain.ExportPngTask) ([]byte, error) {
	if e.Encoder == nil {
		return nil, zerr.With(domain.ErrEncoderUnavailable, "kind", string(domain.KindExportPng))
	}
	return e.Encoder.EncodePng(ctx, doc, task)
}

// SvgExport encodes the pages of a document as vector graphics.
type SvgExport struct {
	Encoder ports.SvgEncoder
}

// Run implements ExportComputation.
func (e SvgExport) Run(ctx context.Context, _ *graph.Graph, doc *domain.PagedDocument, task *domain.ExportSvgTask) (string, error) {
	if e.Encoder == nil {
		return "", zerr.With(domain.ErrEncoderUnavailable, "kind", string(domain.KindExportSvg))
	}
	return e.Encoder.EncodeSvg(ctx, doc, task)
}
