package export_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func errMeta(t *testing.T, err error) map[string]any {
	t.Helper()
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	return zErr.Metadata()
}

// newWorld returns a world whose entry is main.txt inside root.
func newWorld(ctrl *gomock.Controller, root string) *mocks.MockWorld {
	w := mocks.NewMockWorld(ctrl)
	w.EXPECT().Entry().Return(domain.EntryState{Root: root, Main: "main.txt"}).AnyTimes()
	return w
}

func textDocument(title string, texts ...string) *domain.PagedDocument {
	items := make([]domain.FrameItem, 0, len(texts))
	for i, s := range texts {
		items = append(items, domain.TextItem{
			Pos:  domain.Point{X: 0, Y: float64(i) * 12},
			Size: 11,
			Text: s,
		})
	}
	return &domain.PagedDocument{
		Title: title,
		Pages: []domain.Page{{Width: 595, Height: 842, Frame: domain.Frame{Items: items}}},
	}
}

func outputTask(kind domain.TaskKind, when domain.TaskWhen, output domain.PathPattern) domain.ProjectTask {
	cfg := domain.ExportTask{When: when, Output: output}
	switch kind {
	case domain.KindExportPdf:
		return &domain.ExportPdfTask{Export: cfg}
	case domain.KindExportPng:
		return &domain.ExportPngTask{Export: cfg}
	case domain.KindExportSvg:
		return &domain.ExportSvgTask{Export: cfg}
	case domain.KindExportHtml:
		return &domain.ExportHtmlTask{Export: cfg}
	case domain.KindExportMarkdown:
		return &domain.ExportMarkdownTask{Export: cfg}
	case domain.KindExportText:
		return &domain.ExportTextTask{Export: cfg}
	case domain.KindQuery:
		return &domain.QueryTask{Export: cfg}
	default:
		return &domain.PreviewTask{When: when}
	}
}

func allKinds() []domain.TaskKind {
	return []domain.TaskKind{
		domain.KindPreview,
		domain.KindExportPdf,
		domain.KindExportPng,
		domain.KindExportSvg,
		domain.KindExportHtml,
		domain.KindExportMarkdown,
		domain.KindExportText,
		domain.KindQuery,
	}
}
