package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()

	exists, err := Exists(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	require.False(t, exists)

	file := filepath.Join(dir, "yep")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	exists, err = Exists(file)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()

	isDir, err := IsDir(dir)
	require.NoError(t, err)
	require.True(t, isDir)

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	isDir, err = IsDir(file)
	require.NoError(t, err)
	require.False(t, isDir)
}
