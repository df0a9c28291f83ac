package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionString(t *testing.T) {
	s := versionString()
	assert.Contains(t, s, "stylegen")
	assert.Contains(t, s, version)
	assert.Contains(t, s, commit)
	assert.Contains(t, s, date)
}

func TestParseExtensionsFlagEmpty(t *testing.T) {
	assert.Nil(t, parseExtensionsFlag(""))
	assert.Nil(t, parseExtensionsFlag("   "))
}

func TestParseExtensionsFlagAddsDots(t *testing.T) {
	assert.Equal(t, []string{".go", ".py"}, parseExtensionsFlag("go,.py"))
}

func TestParseExtensionsFlagTrimsAndSkipsEmpty(t *testing.T) {
	assert.Equal(t, []string{".go", ".ts"}, parseExtensionsFlag(" go , , ts "))
}

func TestRunNonexistentPathIsSoftExit(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "does-not-exist")})

	err := cmd.Execute()
	require.NoError(t, err, "a missing path ends the run without an error status")
	assert.Contains(t, out.String(), "Path does not exist")
}

func TestRunNonDirectoryPathIsSoftExit(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{file})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Not a directory")
}

func TestResolveRepoPathUsesArgument(t *testing.T) {
	path, err := resolveRepoPath([]string{"/some/repo"})
	require.NoError(t, err)
	assert.Equal(t, "/some/repo", path)
}
