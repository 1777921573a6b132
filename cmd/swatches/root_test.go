package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with an isolated user config dir.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRootCommandPrintsHelp(t *testing.T) {
	stdout, _, err := executeCommand(t)
	require.NoError(t, err)
	require.Contains(t, stdout, "resolve")
	require.Contains(t, stdout, "presets")
	require.Contains(t, stdout, "pick")
}

func TestDefaultPresetsPathIsPickedUp(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := defaultPresetsPath()
	require.NoError(t, err)
	require.Empty(t, path)

	catalog := filepath.Join(dir, "swatches", "presets.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(catalog), 0o755))
	require.NoError(t, os.WriteFile(catalog, []byte("presets:\n  mine: [\"#fff\"]\n"), 0o644))

	path, err = defaultPresetsPath()
	require.NoError(t, err)
	require.Equal(t, catalog, path)

	registry, err := loadRegistry(&rootFlags{})
	require.NoError(t, err)
	_, ok := registry.Lookup("mine")
	require.True(t, ok)
}
