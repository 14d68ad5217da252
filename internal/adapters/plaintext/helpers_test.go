package plaintext_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/mist/internal/core/domain"
)

const mainSource = "= Mist\n\nHello world\n  indented\n#include chapter.txt\n"

// writeProject writes files below a fresh project root and returns the root.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	}
	return root
}

func texts(doc *domain.PagedDocument) []string {
	var out []string
	for pt := range doc.Texts() {
		out = append(out, pt.Item.Text)
	}
	return out
}
