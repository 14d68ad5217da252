package domain

// TaskKind names a ProjectTask variant.
type TaskKind string

const (
	// KindPreview is the live preview task.
	KindPreview TaskKind = "preview"
	// KindExportPdf exports a portable document.
	KindExportPdf TaskKind = "export-pdf"
	// KindExportPng exports page images.
	KindExportPng TaskKind = "export-png"
	// KindExportSvg exports vector graphics.
	KindExportSvg TaskKind = "export-svg"
	// KindExportHtml exports html.
	KindExportHtml TaskKind = "export-html"
	// KindExportMarkdown exports converted markdown.
	KindExportMarkdown TaskKind = "export-md"
	// KindExportText exports the plain text of the document.
	KindExportText TaskKind = "export-text"
	// KindQuery queries document metadata.
	KindQuery TaskKind = "query"
)

// ExportTask is the configuration shared by every exporting task.
type ExportTask struct {
	// When is the staleness policy guarding the export.
	When TaskWhen
	// Output is the output path template. Empty means the task has no output.
	Output PathPattern
}

// ProjectTask is one configured unit of work of a project.
// The set of variants is closed; use Accept for exhaustive dispatch.
type ProjectTask interface {
	// Kind returns the variant name.
	Kind() TaskKind
	// Accept calls the visitor method matching the variant.
	Accept(v TaskVisitor) error
}

// TaskVisitor has one method per ProjectTask variant.
type TaskVisitor interface {
	VisitPreview(t *PreviewTask) error
	VisitExportPdf(t *ExportPdfTask) error
	VisitExportPng(t *ExportPngTask) error
	VisitExportSvg(t *ExportSvgTask) error
	VisitExportHtml(t *ExportHtmlTask) error
	VisitExportMarkdown(t *ExportMarkdownTask) error
	VisitExportText(t *ExportTextTask) error
	VisitQuery(t *QueryTask) error
}

// PreviewTask serves the document to interactive viewers.
type PreviewTask struct {
	When TaskWhen
}

// ExportPdfTask exports a portable document.
type ExportPdfTask struct {
	Export ExportTask
	// Standards lists the PDF standards the output must conform to (e.g. "a-2b").
	Standards []string
	// Creation overrides the document creation timestamp (unix seconds). Zero means now.
	Creation int64
}

// ExportPngTask exports one image per page.
type ExportPngTask struct {
	Export ExportTask
	// PPI is the pixel density.
	PPI float32
	// Fill is the background color, empty for transparent.
	Fill string
}

// ExportSvgTask exports one vector graphic.
type ExportSvgTask struct {
	Export ExportTask
}

// ExportHtmlTask exports html.
type ExportHtmlTask struct {
	Export ExportTask
}

// ExportMarkdownTask exports the document converted to markdown.
type ExportMarkdownTask struct {
	Export ExportTask
}

// ExportTextTask exports the full text of the document.
type ExportTextTask struct {
	Export ExportTask
}

// QueryTask extracts metadata matching a selector.
type QueryTask struct {
	Export   ExportTask
	Format   string
	Selector string
	Field    string
	One      bool
}

// Kind implements ProjectTask.
func (*PreviewTask) Kind() TaskKind { return KindPreview }

// Kind implements ProjectTask.
func (*ExportPdfTask) Kind() TaskKind { return KindExportPdf }

// Kind implements ProjectTask.
func (*ExportPngTask) Kind() TaskKind { return KindExportPng }

// Kind implements ProjectTask.
func (*ExportSvgTask) Kind() TaskKind { return KindExportSvg }

// Kind implements ProjectTask.
func (*ExportHtmlTask) Kind() TaskKind { return KindExportHtml }

// Kind implements ProjectTask.
func (*ExportMarkdownTask) Kind() TaskKind { return KindExportMarkdown }

// Kind implements ProjectTask.
func (*ExportTextTask) Kind() TaskKind { return KindExportText }

// Kind implements ProjectTask.
func (*QueryTask) Kind() TaskKind { return KindQuery }

// Accept implements ProjectTask.
func (t *PreviewTask) Accept(v TaskVisitor) error { return v.VisitPreview(t) }

// Accept implements ProjectTask.
func (t *ExportPdfTask) Accept(v TaskVisitor) error { return v.VisitExportPdf(t) }

// Accept implements ProjectTask.
func (t *ExportPngTask) Accept(v TaskVisitor) error { return v.VisitExportPng(t) }

// Accept implements ProjectTask.
func (t *ExportSvgTask) Accept(v TaskVisitor) error { return v.VisitExportSvg(t) }

// Accept implements ProjectTask.
func (t *ExportHtmlTask) Accept(v TaskVisitor) error { return v.VisitExportHtml(t) }

// Accept implements ProjectTask.
func (t *ExportMarkdownTask) Accept(v TaskVisitor) error { return v.VisitExportMarkdown(t) }

// Accept implements ProjectTask.
func (t *ExportTextTask) Accept(v TaskVisitor) error { return v.VisitExportText(t) }

// Accept implements ProjectTask.
func (t *QueryTask) Accept(v TaskVisitor) error { return v.VisitQuery(t) }

// AsExport returns the export configuration of a task, or nil for tasks that do not export.
func AsExport(t ProjectTask) *ExportTask {
	switch t := t.(type) {
	case *ExportPdfTask:
		return &t.Export
	case *ExportPngTask:
		return &t.Export
	case *ExportSvgTask:
		return &t.Export
	case *ExportHtmlTask:
		return &t.Export
	case *ExportMarkdownTask:
		return &t.Export
	case *ExportTextTask:
		return &t.Export
	case *QueryTask:
		return &t.Export
	default:
		return nil
	}
}

// WhenOf returns the staleness policy of a task.
func WhenOf(t ProjectTask) TaskWhen {
	if p, ok := t.(*PreviewTask); ok {
		return p.When
	}
	if e := AsExport(t); e != nil {
		return e.When
	}
	return WhenNever
}

// Extension returns the file extension used for artifacts of the given kind.
func (k TaskKind) Extension() string {
	switch k {
	case KindExportPdf:
		return "pdf"
	case KindExportPng:
		return "png"
	case KindExportSvg:
		return "svg"
	case KindExportHtml:
		return "html"
	case KindExportMarkdown:
		return "md"
	case KindExportText:
		return "txt"
	case KindQuery:
		return "json"
	default:
		return ""
	}
}

// Project is a loaded project configuration.
type Project struct {
	// Name is the optional project name.
	Name string
	// Root is the absolute project root.
	Root string
	// Entry is the entry file, relative to Root.
	Entry string
	// Tasks maps task names to their configuration.
	Tasks map[string]ProjectTask
}

// EntryState returns the entry state of the project.
func (p *Project) EntryState() EntryState {
	return EntryState{Root: p.Root, Main: p.Entry}
}
