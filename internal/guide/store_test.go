package guide

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveExplicitContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.md")
	var out bytes.Buffer

	NewStore(path, &out).Save("# My Guide\n", nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# My Guide\n", string(data))
	assert.Contains(t, out.String(), "Saved draft to: "+path)
}

func TestStoreSaveFallsBackToSessionDraft(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.md")

	s := NewSession(&fakeProvider{responses: []string{"session draft"}}, "m", 100, io.Discard)
	_, err := s.Submit(context.Background(), "prompt")
	require.NoError(t, err)

	NewStore(path, io.Discard).Save("", s)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "session draft", string(data))
}

func TestStoreSaveNothingToSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.md")
	var out bytes.Buffer

	s := NewSession(&fakeProvider{}, "m", 100, io.Discard)
	NewStore(path, &out).Save("", s)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file should be written")
	assert.Contains(t, out.String(), "No draft to save.")
}

func TestStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	NewStore(path, io.Discard).Save("new", nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestStoreSaveWriteFailureIsReported(t *testing.T) {
	// Parent directory does not exist, so the write fails.
	path := filepath.Join(t.TempDir(), "missing", "guide.md")
	var out bytes.Buffer

	NewStore(path, &out).Save("content", nil)

	assert.Contains(t, out.String(), "Error saving draft:")
}
