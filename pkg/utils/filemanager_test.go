package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandOutputPath(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)

	assert.Equal(t, "output.txt", ExpandOutputPath("output.txt", "data/in.txt", now))
	assert.Equal(t, "sorted/names_20240115.txt", ExpandOutputPath("sorted/{original}_{date}{ext}", "data/names.txt", now))
	assert.Equal(t, "names_20240115_143022.out", ExpandOutputPath("{original}_{timestamp}.out", "names.txt", now))

	withID := ExpandOutputPath("{uuid}.txt", "in.txt", now)
	assert.Len(t, withID, 36+len(".txt"))
	assert.NotEqual(t, withID, ExpandOutputPath("{uuid}.txt", "in.txt", now))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)
	assert.NoError(t, EnsureDir("."))
	assert.NoError(t, EnsureDir(""))

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.Error(t, EnsureDir(filepath.Join(file, "sub")))
}
