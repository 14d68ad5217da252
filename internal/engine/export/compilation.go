package export

import (
	"context"

	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/engine/graph"
)

// diagnosticsWhen is the policy under which diagnostics are refreshed.
const diagnosticsWhen = domain.WhenOnType

// Compilation is the outcome of the pre-flight pass over a snapshot.
type Compilation struct {
	// PagedRequired is set when at least one consumer needs the paged document.
	PagedRequired bool
	Diagnostics   []domain.Diagnostic
}

// ProjectCompilationKey decides whether the snapshot needs a paged compilation,
// publishes the decision as CompilePagedFlag and then collects diagnostics.
var ProjectCompilationKey = graph.NewKey("project compilation", computeCompilation)

func computeCompilation(ctx context.Context, g *graph.Graph) (Compilation, error) {
	paged, err := preconfigTimings(g)
	if err != nil {
		return Compilation{}, err
	}

	diags, err := graph.Compute(ctx, g, DiagnosticsKey)
	if err != nil {
		return Compilation{}, err
	}

	return Compilation{PagedRequired: paged, Diagnostics: diags}, nil
}

func preconfigTimings(g *graph.Graph) (bool, error) {
	whens := []domain.TaskWhen{diagnosticsWhen}

	pdf, ok, err := graph.Get(g, PdfConfigKey)
	if err != nil {
		return false, err
	}
	if ok && pdf != nil {
		whens = append(whens, pdf.Export.When)
	}

	svg, ok, err := graph.Get(g, SvgConfigKey)
	if err != nil {
		return false, err
	}
	if ok && svg != nil {
		whens = append(whens, svg.Export.When)
	}

	png, ok, err := graph.Get(g, PngConfigKey)
	if err != nil {
		return false, err
	}
	if ok && png != nil {
		whens = append(whens, png.Export.When)
	}

	text, ok, err := graph.Get(g, TextConfigKey)
	if err != nil {
		return false, err
	}
	if ok && text != nil {
		whens = append(whens, text.Export.When)
	}

	md, ok, err := graph.Get(g, MarkdownConfigKey)
	if err != nil {
		return false, err
	}
	if ok && md != nil {
		whens = append(whens, md.Export.When)
	}

	snap := g.Snapshot()
	paged := false
	for _, when := range whens {
		if NeedsRun(snap, when, nil) {
			paged = true
			break
		}
	}

	if err := graph.Provide(g, CompilePagedFlag, paged); err != nil {
		return false, err
	}

	return paged, nil
}
