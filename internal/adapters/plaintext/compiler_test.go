package plaintext_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mist/internal/adapters/plaintext"
	"go.trai.ch/mist/internal/adapters/vfs"
	"go.trai.ch/mist/internal/core/domain"
)

func TestCompile(t *testing.T) {
	root := writeProject(t, map[string]string{
		"main.txt":    mainSource,
		"chapter.txt": "== Chapter\nChapter text\n",
	})

	doc, diags, err := plaintext.NewCompiler().Compile(t.Context(), vfs.NewWorld(root, "main.txt"))
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.NotNil(t, doc)

	assert.Equal(t, "Mist", doc.Title)
	require.Len(t, doc.Pages, 1)
	assert.InDelta(t, plaintext.PageWidth, doc.Pages[0].Width, 0.001)
	assert.Equal(t, []string{"Mist", "Hello world", "indented", "Chapter", "Chapter text"}, texts(doc))

	var spans []domain.Span
	for pt := range doc.Texts() {
		spans = append(spans, pt.Item.Span.Span)
		assert.False(t, pt.Item.Span.Span.IsDetached())
		assert.GreaterOrEqual(t, pt.Pos.X, plaintext.Margin)
		assert.GreaterOrEqual(t, pt.Pos.Y, plaintext.Margin)
	}
	assert.Equal(t, domain.Span(1), spans[0])
	assert.Equal(t, domain.Span(3), spans[1])
	assert.Equal(t, domain.Span(1<<32|1), spans[3])
}

func TestCompile_IsDeterministic(t *testing.T) {
	root := writeProject(t, map[string]string{"main.txt": mainSource, "chapter.txt": "text\n"})
	c := plaintext.NewCompiler()

	a, _, err := c.Compile(t.Context(), vfs.NewWorld(root, "main.txt"))
	require.NoError(t, err)
	b, _, err := c.Compile(t.Context(), vfs.NewWorld(root, "main.txt"))
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestCompile_Paginates(t *testing.T) {
	var src strings.Builder
	for i := range 60 {
		fmt.Fprintf(&src, "line %d\n", i)
	}
	root := writeProject(t, map[string]string{"main.txt": src.String()})

	doc, _, err := plaintext.NewCompiler().Compile(t.Context(), vfs.NewWorld(root, "main.txt"))
	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)

	last := -1
	count := 0
	for pt := range doc.Texts() {
		assert.GreaterOrEqual(t, pt.Page, last)
		assert.LessOrEqual(t, pt.Pos.Y, plaintext.PageHeight-plaintext.Margin)
		last = pt.Page
		count++
	}
	assert.Equal(t, 60, count)
	assert.Equal(t, 1, last)
}

func TestCompile_Diagnostics(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		wantDoc  bool
		severity domain.Severity
		message  string
		line     int
	}{
		{
			name:     "missing include",
			files:    map[string]string{"main.txt": "intro\n#include missing.txt\n"},
			severity: domain.SeverityError,
			message:  "cannot include missing.txt",
			line:     1,
		},
		{
			name:     "cyclic include",
			files:    map[string]string{"main.txt": "#include other.txt\n", "other.txt": "#include main.txt\n"},
			severity: domain.SeverityError,
			message:  "cyclic include of main.txt",
		},
		{
			name:     "include outside project",
			files:    map[string]string{"main.txt": "#include ../outside.txt\n"},
			severity: domain.SeverityError,
			message:  "cannot include ../outside.txt",
		},
		{
			name:     "include without file",
			files:    map[string]string{"main.txt": "#include\n"},
			severity: domain.SeverityError,
			message:  "include without a file",
		},
		{
			name:     "unknown directive",
			files:    map[string]string{"main.txt": "text\n  #pragma once\n"},
			wantDoc:  true,
			severity: domain.SeverityWarning,
			message:  `unknown directive "#pragma" ignored`,
			line:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeProject(t, tt.files)
			c := plaintext.NewCompiler()
			world := vfs.NewWorld(root, "main.txt")

			doc, diags, err := c.Compile(t.Context(), world)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDoc, doc != nil)

			require.Len(t, diags, 1)
			assert.Equal(t, tt.severity, diags[0].Severity)
			assert.Contains(t, diags[0].Message, tt.message)
			assert.Equal(t, tt.line, diags[0].Location.Pos.Line)

			checked, err := c.Check(t.Context(), world)
			require.NoError(t, err)
			assert.Equal(t, diags, checked)
		})
	}
}

func TestCompile_MissingEntry(t *testing.T) {
	c := plaintext.NewCompiler()

	_, _, err := c.Compile(t.Context(), vfs.NewWorld(t.TempDir(), "main.txt"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileNotFound.Error())

	_, err = c.Check(t.Context(), vfs.NewWorld(t.TempDir(), "@preview/pkg/lib.txt"))
	assert.ErrorContains(t, err, domain.ErrFileNotFound.Error())
}

func TestCompile_MemoryFiles(t *testing.T) {
	root := writeProject(t, map[string]string{"main.txt": "on disk\n"})
	overlay := vfs.NewOverlay(root)
	require.NoError(t, overlay.UpdateMemoryFiles(t.Context(), domain.MemoryFiles{
		Files: map[string]string{"main.txt": "= Draft\nunsaved\n"},
	}, false))

	doc, _, err := plaintext.NewCompiler().Compile(t.Context(), overlay.Snapshot("main.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Draft", doc.Title)
	assert.Equal(t, []string{"Draft", "unsaved"}, texts(doc))
}

func TestConvert(t *testing.T) {
	root := writeProject(t, map[string]string{
		"main.txt":    mainSource,
		"chapter.txt": "== Chapter\nChapter text\n\n\n",
	})

	md, err := plaintext.NewCompiler().Convert(t.Context(), vfs.NewWorld(root, "main.txt"))
	require.NoError(t, err)
	assert.Equal(t, "# Mist\n\nHello world\nindented\n\n## Chapter\n\nChapter text\n", md)
}
