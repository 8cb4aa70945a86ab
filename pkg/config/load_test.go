package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testConfig = `
repository: registry.example.com/aolifu/meetspot
platform: linux/amd64
build_args:
  COMMIT: abc123
`

func TestGetConfigDefaultsWhenFileAbsent(t *testing.T) {
	dir := t.TempDir()

	cfg, projectDir, err := GetConfig(dir)
	require.NoError(t, err)
	require.Equal(t, dir, projectDir)
	require.Equal(t, "aolifu/meetspot", cfg.Repository)
	require.Equal(t, "Dockerfile", cfg.Dockerfile)
}

func TestGetConfigLoadsReleaseYAML(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "release.yaml"), []byte(testConfig), 0o644)
	require.NoError(t, err)

	cfg, projectDir, err := GetConfig(dir)
	require.NoError(t, err)
	require.Equal(t, dir, projectDir)
	require.Equal(t, "registry.example.com/aolifu/meetspot", cfg.Repository)
	require.Equal(t, "linux/amd64", cfg.Platform)
	require.Equal(t, map[string]string{"COMMIT": "abc123"}, cfg.BuildArgs)
	// defaults still fill the unset fields
	require.Equal(t, "Dockerfile", cfg.Dockerfile)
}

func TestGetConfigRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "release.yaml"), []byte("imagename: whoops\n"), 0o644)
	require.NoError(t, err)

	_, _, err = GetConfig(dir)
	require.Error(t, err)
}

func TestFindProjectRootDirWalksUp(t *testing.T) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, "release.yaml"), []byte(testConfig), 0o644)
	require.NoError(t, err)
	nested := filepath.Join(root, "app", "web")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := findProjectRootDir(nested)
	require.NoError(t, err)
	require.Equal(t, root, found)
}
