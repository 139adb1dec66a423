package sink

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")

	require.NoError(t, WriteAll(path, []string{"a", "", "b"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestWriteAllReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old contents\n"), 0o644))

	require.NoError(t, WriteAll(path, []string{"new"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWriteAllEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteAll(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteAllGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt.gz")
	require.NoError(t, WriteAll(path, []string{"1", "2"}))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	zr, err := gzip.NewReader(file)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", string(data))
}

func TestWriteAllUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := WriteAll(filepath.Join(blocker, "out.txt"), []string{"x"})
	assert.Error(t, err)
}
