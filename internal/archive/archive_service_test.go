package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEntriesMissingRoot(t *testing.T) {
	service := NewArchiveService(filepath.Join(t.TempDir(), "does-not-exist"))

	entries, err := service.ListEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListEntriesSkipsFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "run-1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0o644))

	service := NewArchiveService(root)

	entries, err := service.ListEntries()
	require.NoError(t, err)
	assert.Equal(t, []string{"run-1"}, entries)
}

func TestDeleteAll(t *testing.T) {
	root := t.TempDir()

	for _, name := range []string{"run-1", "run-2"} {
		dir := filepath.Join(root, name)
		require.NoError(t, os.Mkdir(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "output.png"), []byte("png"), 0o644))
	}

	service := NewArchiveService(root)

	entries, err := service.ListEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	deleted, err := service.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, len(entries), deleted)

	for _, name := range entries {
		assert.NoDirExists(t, filepath.Join(root, name))
	}

	remaining, err := service.ListEntries()
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeleteAllEmptyRoot(t *testing.T) {
	service := NewArchiveService(t.TempDir())

	deleted, err := service.DeleteAll()
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
