package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports/mocks"
	"go.trai.ch/mist/internal/engine/export"
	"go.trai.ch/mist/internal/engine/graph"
	"go.uber.org/mock/gomock"
)

func TestProjectCompilation_PagedDiagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)
	diags := []domain.Diagnostic{{Severity: domain.SeverityWarning, Message: "unused label"}}

	compiler := mocks.NewMockCompiler(ctrl)
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(textDocument("", "x"), diags, nil).Times(1)

	snap := graph.Snapshot{World: newWorld(ctrl, t.TempDir()), Signal: domain.ExportSignal{ByMemEvents: true}}
	task := outputTask(domain.KindExportPdf, domain.WhenOnSave, "$root/$name")

	g, err := export.Prepare(snap, nil, export.Features{Compiler: compiler}, export.SelectedTask{Name: "pdf", Task: task})
	require.NoError(t, err)

	comp, err := graph.Compute(t.Context(), g, export.ProjectCompilationKey)
	require.NoError(t, err)
	assert.True(t, comp.PagedRequired)
	assert.Equal(t, diags, comp.Diagnostics)

	flag, ok, err := graph.Get(g, export.CompilePagedFlag)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, flag)

	// The compiled document is shared with later exports.
	_, err = graph.Compute(t.Context(), g, export.DocumentKey)
	require.NoError(t, err)
}

func TestProjectCompilation_FlagConflict(t *testing.T) {
	ctrl := gomock.NewController(t)

	snap := graph.Snapshot{World: newWorld(ctrl, t.TempDir()), Signal: domain.ExportSignal{ByEntryUpdate: true}}
	task := outputTask(domain.KindExportText, domain.WhenOnType, "$root/$name")

	g, err := export.Prepare(snap, nil, export.Features{Compiler: mocks.NewMockCompiler(ctrl)}, export.SelectedTask{Name: "text", Task: task})
	require.NoError(t, err)
	require.NoError(t, graph.Provide(g, export.CompilePagedFlag, false))

	_, err = graph.Compute(t.Context(), g, export.ProjectCompilationKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTaskAlreadyProvided.Error())
}

func TestDiagnostics_CheckWithoutPagedCompilation(t *testing.T) {
	ctrl := gomock.NewController(t)
	diags := []domain.Diagnostic{{Severity: domain.SeverityError, Message: "unknown variable"}}

	compiler := mocks.NewMockCompiler(ctrl)
	compiler.EXPECT().Check(gomock.Any(), gomock.Any()).Return(diags, nil).Times(1)

	snap := graph.Snapshot{World: newWorld(ctrl, t.TempDir())}
	task := outputTask(domain.KindPreview, domain.WhenOnType, "")

	g, err := export.Prepare(snap, nil, export.Features{Compiler: compiler}, export.SelectedTask{Name: "preview", Task: task})
	require.NoError(t, err)
	require.NoError(t, graph.Provide(g, export.CompilePagedFlag, false))

	got, err := graph.Compute(t.Context(), g, export.DiagnosticsKey)
	require.NoError(t, err)
	assert.Equal(t, diags, got)
}

func TestDocument_MissingCompiler(t *testing.T) {
	ctrl := gomock.NewController(t)

	snap := graph.Snapshot{World: newWorld(ctrl, t.TempDir())}
	task := outputTask(domain.KindExportText, domain.WhenOnType, "$root/$name")

	g, err := export.Prepare(snap, nil, export.Features{}, export.SelectedTask{Name: "text", Task: task})
	require.NoError(t, err)

	_, err = graph.Compute(t.Context(), g, export.DocumentKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCompileFailed.Error())
}
