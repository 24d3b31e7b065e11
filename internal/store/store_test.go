package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>hi</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), nil, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "a.css"), []byte("body{}"), 0o644))

	s := New(dir)

	// Test: existing file comes back byte-for-byte
	data, ok := s.Load("index.html")
	require.True(t, ok)
	assert.Equal(t, []byte("<h1>hi</h1>"), data)

	// Test: nested relative path
	data, ok = s.Load("sub/a.css")
	require.True(t, ok)
	assert.Equal(t, []byte("body{}"), data)

	// Test: missing file and empty file are the same outcome
	_, ok = s.Load("nope.txt")
	assert.False(t, ok)
	_, ok = s.Load("empty.txt")
	assert.False(t, ok)

	// Test: a directory is unreadable as a file => not found
	_, ok = s.Load("sub")
	assert.False(t, ok)
}
