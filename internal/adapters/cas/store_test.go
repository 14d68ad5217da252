package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mist/internal/adapters/cas"
	"go.trai.ch/mist/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	rec := domain.ExportRecord{
		Task:        "pdf",
		Path:        filepath.Join(root, "out", "main.pdf"),
		Fingerprint: 0xdeadbeefcafe,
		Timestamp:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Put(root, rec))

	got, err := store.Get(root, "pdf")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)

	rec.Fingerprint = 1
	require.NoError(t, store.Put(root, rec))
	got, err = store.Get(root, "pdf")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.Fingerprint)

	entries, err := os.ReadDir(filepath.Join(root, domain.DefaultStorePath()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are renamed away")
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	got, err := cas.NewStore().Get(t.TempDir(), "never-exported")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_TasksAreSeparate(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()
	require.NoError(t, store.Put(root, domain.ExportRecord{Task: "pdf", Fingerprint: 1}))
	require.NoError(t, store.Put(root, domain.ExportRecord{Task: "text", Fingerprint: 2}))

	pdf, err := store.Get(root, "pdf")
	require.NoError(t, err)
	text, err := store.Get(root, "text")
	require.NoError(t, err)

	assert.Equal(t, uint64(1), pdf.Fingerprint)
	assert.Equal(t, uint64(2), text.Fingerprint)
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()
	require.NoError(t, store.Put(root, domain.ExportRecord{Task: "pdf"}))

	dir := filepath.Join(root, domain.DefaultStorePath())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{"), domain.FilePerm))

	_, err = store.Get(root, "pdf")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_PutUnwritable(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	// A file where the state directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.MistDirName), []byte("x"), domain.FilePerm))

	err := cas.NewStore().Put(root, domain.ExportRecord{Task: "pdf"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreCreateFailed.Error())
}
