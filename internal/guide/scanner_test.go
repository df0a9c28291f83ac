package guide

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- helpers ----------

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func candidatePaths(candidates []CandidatePath) []string {
	var paths []string
	for _, c := range candidates {
		paths = append(paths, filepath.ToSlash(c.Path))
	}
	return paths
}

// ---------- tests ----------

func TestScanEmptyDir(t *testing.T) {
	dir := t.TempDir()

	candidates, err := Scan(dir, 20, []string{".py"}, io.Discard)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestScanFewerThanMax(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "print('a')\n")
	writeFile(t, filepath.Join(dir, "sub", "b.py"), "print('b')\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not code\n")

	candidates, err := Scan(dir, 20, []string{".py"}, io.Discard)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	for _, c := range candidates {
		assert.Equal(t, ".py", c.Ext)
	}
	assert.Equal(t, []string{"a.py", "sub/b.py"}, candidatePaths(candidates))
}

func TestScanGlobalCap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "a\n")
	writeFile(t, filepath.Join(dir, "b.py"), "b\n")
	writeFile(t, filepath.Join(dir, "c.py"), "c\n")

	candidates, err := Scan(dir, 2, []string{".py"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py", "b.py"}, candidatePaths(candidates))
}

func TestScanCapAcrossExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "a\n")
	writeFile(t, filepath.Join(dir, "b.py"), "b\n")
	writeFile(t, filepath.Join(dir, "a.go"), "package a\n")
	writeFile(t, filepath.Join(dir, "b.go"), "package b\n")

	// The cap is global: once three paths are collected, the .go walk stops
	// and nothing further is scanned.
	candidates, err := Scan(dir, 3, []string{".py", ".go"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py", "b.py", "a.go"}, candidatePaths(candidates))
}

func TestScanExtensionsNotInterleaved(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "a\n")
	writeFile(t, filepath.Join(dir, "z.go"), "package z\n")

	candidates, err := Scan(dir, 20, []string{".go", ".py"}, io.Discard)
	require.NoError(t, err)

	// All .go matches come before any .py match, in extension order.
	assert.Equal(t, []string{"z.go", "a.py"}, candidatePaths(candidates))
}

func TestScanSkipsJunkDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "node_modules", "dep.py"), "dep\n")
	writeFile(t, filepath.Join(dir, "vendor", "lib.py"), "lib\n")
	writeFile(t, filepath.Join(dir, "__pycache__", "cached.py"), "cached\n")
	writeFile(t, filepath.Join(dir, "real.py"), "real\n")

	candidates, err := Scan(dir, 20, []string{".py"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"real.py"}, candidatePaths(candidates))
}

func TestScanReportsCount(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "a\n")
	writeFile(t, filepath.Join(dir, "b.py"), "b\n")

	var out bytes.Buffer
	_, err := Scan(dir, 20, []string{".py"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Found 2 code files")
}
