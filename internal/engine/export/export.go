package export

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/engine/graph"
	"go.trai.ch/zerr"
)

// ExportComputation derives one artifact of type O from a compiled document.
type ExportComputation[C, O any] interface {
	Run(ctx context.Context, g *graph.Graph, doc *domain.PagedDocument, config C) (O, error)
}

// Artifact describes the outcome of exporting one task.
type Artifact struct {
	Task string
	Kind domain.TaskKind
	// Path is the resolved output path, empty when the task has no output.
	Path string
	// Written is set when the artifact was written to Path.
	Written bool
	Size    int
	// Fingerprint is the fingerprint of the exported document.
	Fingerprint uint64
}

// ProjectExportKey runs the selected task and writes its artifact.
var ProjectExportKey = graph.NewKey("project export", computeProjectExport)

func computeProjectExport(ctx context.Context, g *graph.Graph) (Artifact, error) {
	selected, err := graph.MustGet(g, ProjectTaskKey)
	if err != nil {
		return Artifact{}, err
	}
	features, err := graph.MustGet(g, FeaturesKey)
	if err != nil {
		return Artifact{}, err
	}

	kind := selected.Task.Kind()
	art := Artifact{Task: selected.Name, Kind: kind}

	cfg := domain.AsExport(selected.Task)
	if cfg == nil {
		return art, nil
	}

	var entry domain.EntryState
	if world := g.Snapshot().World; world != nil {
		entry = world.Entry()
	}
	path, ok := cfg.Output.Substitute(entry)
	if !ok {
		return art, nil
	}
	path = domain.WithExtension(path, kind.Extension())
	art.Path = path

	run := &runner{ctx: ctx, g: g, when: cfg.When, features: features}
	if err := selected.Task.Accept(run); err != nil {
		return art, err
	}
	if run.out == nil {
		return art, nil
	}

	if err := writeArtifact(path, run.out); err != nil {
		return art, err
	}

	art.Written = true
	art.Size = len(run.out)
	if doc, ok, _ := graph.Get(g, DocumentKey); ok {
		art.Fingerprint = doc.Doc.Fingerprint()
	}

	return art, nil
}

func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", path)
	}
	//nolint:gosec // Path is resolved from the project configuration
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", path)
	}
	return nil
}

// runner produces the artifact bytes of a task. A nil out means nothing to write.
type runner struct {
	ctx      context.Context
	g        *graph.Graph
	when     domain.TaskWhen
	features Features
	out      []byte
}

func (r *runner) VisitPreview(t *domain.PreviewTask) error {
	return unimplemented(t)
}

func (r *runner) VisitExportPdf(t *domain.ExportPdfTask) error {
	out, err := exportBytes(r.ctx, r.g, r.when, PdfExport{Encoder: r.features.Pdf}, t)
	r.out = out
	return err
}

func (r *runner) VisitExportPng(t *domain.ExportPngTask) error {
	out, err := exportBytes(r.ctx, r.g, r.when, PngExport{Encoder: r.features.Png}, t)
	r.out = out
	return err
}

func (r *runner) VisitExportSvg(t *domain.ExportSvgTask) error {
	out, err := exportString(r.ctx, r.g, r.when, SvgExport{Encoder: r.features.Svg}, t)
	r.out = out
	return err
}

func (r *runner) VisitExportHtml(t *domain.ExportHtmlTask) error {
	return unimplemented(t)
}

func (r *runner) VisitExportMarkdown(*domain.ExportMarkdownTask) error {
	doc, err := graph.Compute(r.ctx, r.g, DocumentKey)
	if err != nil {
		return err
	}
	if !NeedsRun(r.g.Snapshot(), r.when, doc.Doc) || doc.Doc == nil {
		return nil
	}

	md, err := graph.Compute(r.ctx, r.g, TypliteMdExportKey)
	if err != nil {
		return err
	}
	r.out = []byte(md)
	return nil
}

func (r *runner) VisitExportText(t *domain.ExportTextTask) error {
	out, err := exportString(r.ctx, r.g, r.when, TextExport{}, t)
	r.out = out
	return err
}

func (r *runner) VisitQuery(t *domain.QueryTask) error {
	return unimplemented(t)
}

func unimplemented(t domain.ProjectTask) error {
	return zerr.With(domain.ErrUnimplementedTaskKind, "kind", string(t.Kind()))
}

func exportBytes[C any](
	ctx context.Context,
	g *graph.Graph,
	when domain.TaskWhen,
	comp ExportComputation[C, []byte],
	config C,
) ([]byte, error) {
	doc, err := graph.Compute(ctx, g, DocumentKey)
	if err != nil {
		return nil, err
	}
	if !NeedsRun(g.Snapshot(), when, doc.Doc) || doc.Doc == nil {
		return nil, nil
	}
	return comp.Run(ctx, g, doc.Doc, config)
}

func exportString[C any](
	ctx context.Context,
	g *graph.Graph,
	when domain.TaskWhen,
	comp ExportComputation[C, string],
	config C,
) ([]byte, error) {
	doc, err := graph.Compute(ctx, g, DocumentKey)
	if err != nil {
		return nil, err
	}
	if !NeedsRun(g.Snapshot(), when, doc.Doc) || doc.Doc == nil {
		return nil, nil
	}
	s, err := comp.Run(ctx, g, doc.Doc, config)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
