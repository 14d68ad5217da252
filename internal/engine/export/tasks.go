// Package export decides which artifacts a compilation snapshot requires and writes them.
package export

import (
	"context"

	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/mist/internal/engine/graph"
	"go.trai.ch/zerr"
)

// SelectedTask is the configured task an export graph runs.
type SelectedTask struct {
	Name string
	Task domain.ProjectTask
}

// Features are the external capabilities an export graph uses.
// Nil encoders make the matching export kinds fail with ErrEncoderUnavailable.
type Features struct {
	Compiler ports.Compiler
	Markdown ports.MarkdownConverter
	Pdf      ports.PdfEncoder
	Png      ports.PngEncoder
	Svg      ports.SvgEncoder
}

// Document is the outcome of compiling the snapshot into pages.
// Doc is nil when the source does not compile.
type Document struct {
	Doc         *domain.PagedDocument
	Diagnostics []domain.Diagnostic
}

var (
	// ProjectTaskKey holds the task selected for export.
	ProjectTaskKey = graph.NewInput[SelectedTask]("project task")
	// FeaturesKey holds the external capabilities.
	FeaturesKey = graph.NewInput[Features]("features")

	// PdfConfigKey holds the configuration of the PDF export, when configured.
	PdfConfigKey = graph.NewInput[*domain.ExportPdfTask]("config export-pdf")
	// PngConfigKey holds the configuration of the PNG export, when configured.
	PngConfigKey = graph.NewInput[*domain.ExportPngTask]("config export-png")
	// SvgConfigKey holds the configuration of the SVG export, when configured.
	SvgConfigKey = graph.NewInput[*domain.ExportSvgTask]("config export-svg")
	// TextConfigKey holds the configuration of the text export, when configured.
	TextConfigKey = graph.NewInput[*domain.ExportTextTask]("config export-text")
	// MarkdownConfigKey holds the configuration of the markdown export, when configured.
	MarkdownConfigKey = graph.NewInput[*domain.ExportMarkdownTask]("config export-md")

	// CompilePagedFlag records whether any configured task needs the paged document.
	CompilePagedFlag = graph.NewInput[bool]("flag paged compilation")

	// DocumentKey compiles the snapshot into pages.
	DocumentKey = graph.NewKey("paged document", computeDocument)
	// DiagnosticsKey collects the compiler diagnostics of the snapshot.
	DiagnosticsKey = graph.NewKey("diagnostics", computeDiagnostics)
)

// Prepare creates a graph over snap for one selected task and provides its inputs.
func Prepare(snap graph.Snapshot, tracer ports.Tracer, features Features, task SelectedTask) (*graph.Graph, error) {
	g := graph.New(snap, tracer)

	if err := graph.Provide(g, FeaturesKey, features); err != nil {
		return nil, err
	}
	if err := graph.Provide(g, ProjectTaskKey, task); err != nil {
		return nil, err
	}
	if err := task.Task.Accept(&configProvider{g: g}); err != nil {
		return nil, err
	}

	return g, nil
}

// configProvider provides the configuration of a task under its per-kind key.
type configProvider struct {
	g *graph.Graph
}

func (p *configProvider) VisitPreview(*domain.PreviewTask) error {
	return nil
}

func (p *configProvider) VisitExportPdf(t *domain.ExportPdfTask) error {
	return graph.Provide(p.g, PdfConfigKey, t)
}

func (p *configProvider) VisitExportPng(t *domain.ExportPngTask) error {
	return graph.Provide(p.g, PngConfigKey, t)
}

func (p *configProvider) VisitExportSvg(t *domain.ExportSvgTask) error {
	return graph.Provide(p.g, SvgConfigKey, t)
}

func (p *configProvider) VisitExportHtml(*domain.ExportHtmlTask) error {
	return nil
}

func (p *configProvider) VisitExportMarkdown(t *domain.ExportMarkdownTask) error {
	return graph.Provide(p.g, MarkdownConfigKey, t)
}

func (p *configProvider) VisitExportText(t *domain.ExportTextTask) error {
	return graph.Provide(p.g, TextConfigKey, t)
}

func (p *configProvider) VisitQuery(*domain.QueryTask) error {
	return nil
}

func computeDocument(ctx context.Context, g *graph.Graph) (Document, error) {
	features, err := graph.MustGet(g, FeaturesKey)
	if err != nil {
		return Document{}, err
	}
	if features.Compiler == nil {
		return Document{}, zerr.With(domain.ErrCompileFailed, "reason", "no compiler configured")
	}

	world := g.Snapshot().World
	if world == nil {
		return Document{}, nil
	}

	doc, diags, err := features.Compiler.Compile(ctx, world)
	if err != nil {
		// Compile errors become diagnostics and leave the document nil.
		diags = append(diags, domain.Diagnostic{
			Severity: domain.SeverityError,
			Location: domain.SourceLocation{Filepath: world.Entry().Main},
			Message:  err.Error(),
		})
		return Document{Diagnostics: diags}, nil
	}

	return Document{Doc: doc, Diagnostics: diags}, nil
}

func computeDiagnostics(ctx context.Context, g *graph.Graph) ([]domain.Diagnostic, error) {
	paged, _, err := graph.Get(g, CompilePagedFlag)
	if err != nil {
		return nil, err
	}

	if paged {
		doc, err := graph.Compute(ctx, g, DocumentKey)
		if err != nil {
			return nil, err
		}
		return doc.Diagnostics, nil
	}

	features, err := graph.MustGet(g, FeaturesKey)
	if err != nil {
		return nil, err
	}
	world := g.Snapshot().World
	if features.Compiler == nil || world == nil {
		return nil, nil
	}
	return features.Compiler.Check(ctx, world)
}
