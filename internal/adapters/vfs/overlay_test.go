package vfs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mist/internal/adapters/vfs"
	"go.trai.ch/mist/internal/core/domain"
)

func TestWorld_SourceFallsBackToDisk(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.txt"), []byte("on disk"), domain.FilePerm))

	w := vfs.NewWorld(root, "main.txt")

	got, err := w.Source("main.txt")
	require.NoError(t, err)
	assert.Equal(t, "on disk", got)
	assert.False(t, w.Shadowed("main.txt"))

	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryState{Root: absRoot, Main: "main.txt"}, w.Entry())
}

func TestWorld_MissingFile(t *testing.T) {
	w := vfs.NewWorld(t.TempDir(), "main.txt")

	_, err := w.Source("chapters/missing.txt")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileNotFound.Error())
}

func TestOverlay_MemoryFilesShadowDisk(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.txt"), []byte("on disk"), domain.FilePerm))

	o := vfs.NewOverlay(root)
	require.NoError(t, o.UpdateMemoryFiles(t.Context(), domain.MemoryFiles{Files: map[string]string{
		filepath.Join(o.Root(), "main.txt"): "unsaved",
		"./notes/../draft.txt":              "only in memory",
	}}, false))

	w := o.Snapshot("main.txt")
	got, err := w.Source("main.txt")
	require.NoError(t, err)
	assert.Equal(t, "unsaved", got)
	assert.True(t, w.Shadowed("main.txt"))

	got, err = w.Source("draft.txt")
	require.NoError(t, err)
	assert.Equal(t, "only in memory", got)
}

func TestOverlay_SnapshotIsImmutable(t *testing.T) {
	o := vfs.NewOverlay(t.TempDir())
	require.NoError(t, o.UpdateMemoryFiles(t.Context(), domain.MemoryFiles{Files: map[string]string{"a.txt": "v1"}}, false))

	before := o.Snapshot("a.txt")
	require.NoError(t, o.UpdateMemoryFiles(t.Context(), domain.MemoryFiles{Files: map[string]string{"a.txt": "v2"}}, false))

	got, err := before.Source("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	got, err = o.Snapshot("a.txt").Source("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestOverlay_Reset(t *testing.T) {
	o := vfs.NewOverlay(t.TempDir())
	ctx := t.Context()

	require.NoError(t, o.UpdateMemoryFiles(ctx, domain.MemoryFiles{Files: map[string]string{"a.txt": "a", "b.txt": "b"}}, false))
	require.NoError(t, o.UpdateMemoryFiles(ctx, domain.MemoryFiles{Files: map[string]string{"c.txt": "c"}}, true))

	assert.Equal(t, 1, o.Len())
	w := o.Snapshot("c.txt")
	assert.False(t, w.Shadowed("a.txt"))
	assert.True(t, w.Shadowed("c.txt"))
}

func TestOverlay_RemoveShadowFiles(t *testing.T) {
	o := vfs.NewOverlay(t.TempDir())
	ctx := t.Context()
	require.NoError(t, o.UpdateMemoryFiles(ctx, domain.MemoryFiles{Files: map[string]string{"a.txt": "a", "b.txt": "b"}}, false))

	rev := o.Revision()
	require.NoError(t, o.RemoveShadowFiles(ctx, domain.MemoryFilesShort{Files: []string{"a.txt", "unknown.txt"}}))

	assert.Greater(t, o.Revision(), rev)
	assert.Equal(t, 1, o.Len())
	assert.False(t, o.Snapshot("b.txt").Shadowed("a.txt"))
}

func TestOverlay_RejectsPathsOutsideRoot(t *testing.T) {
	root := t.TempDir()
	o := vfs.NewOverlay(filepath.Join(root, "project"))

	err := o.UpdateMemoryFiles(t.Context(), domain.MemoryFiles{Files: map[string]string{
		filepath.Join(root, "elsewhere.txt"): "x",
	}}, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileNotFound.Error())
	assert.Zero(t, o.Len())
}

func TestWorld_RejectsRelativeEscapes(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "project")
	require.NoError(t, os.MkdirAll(root, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("secret"), domain.FilePerm))

	world := vfs.NewWorld(root, "main.txt")
	for _, path := range []string{"../secret.txt", "..", "chapters/../../secret.txt", filepath.Join(parent, "secret.txt")} {
		content, err := world.Source(path)
		require.Error(t, err, path)
		assert.ErrorContains(t, err, domain.ErrFileNotFound.Error())
		assert.Empty(t, content)
	}

	rel, err := vfs.RelPath(root, "chapters/../main.txt")
	require.NoError(t, err)
	assert.Equal(t, "main.txt", rel)
}
