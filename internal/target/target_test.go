package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	// Test: root and empty path map to the default document
	p, err := Resolve("/", "index.html")
	require.NoError(t, err)
	assert.Equal(t, "index.html", p)

	p, err = Resolve("", "index.html")
	require.NoError(t, err)
	assert.Equal(t, "index.html", p)

	// Test: the configured default document is honored
	p, err = Resolve("/", "home.html")
	require.NoError(t, err)
	assert.Equal(t, "home.html", p)

	// Test: one leading slash is stripped
	p, err = Resolve("/css/site.css", "index.html")
	require.NoError(t, err)
	assert.Equal(t, "css/site.css", p)

	// Test: unsafe patterns are rejected whatever the rest looks like
	for _, raw := range []string{
		"/../etc/passwd",
		"/a/../b",
		"//double",
		"/ok/..",
		`/win\path`,
		"..",
	} {
		_, err = Resolve(raw, "index.html")
		require.ErrorIs(t, err, ErrUnsafePath, "raw %q", raw)
	}

	// Test: percent-decoding and plus-to-space
	p, err = Resolve("/a%20b.txt", "index.html")
	require.NoError(t, err)
	assert.Equal(t, "a b.txt", p)

	p, err = Resolve("/a+b.txt", "index.html")
	require.NoError(t, err)
	assert.Equal(t, "a b.txt", p)

	// Test: decode runs AFTER the strip step — a path starting with an
	// encoded slash keeps it, because it never started with a literal '/'
	p, err = Resolve("%2Ffile.txt", "index.html")
	require.NoError(t, err)
	assert.Equal(t, "/file.txt", p)

	// Test: a truncated escape at the end passes through verbatim
	p, err = Resolve("/x%2", "index.html")
	require.NoError(t, err)
	assert.Equal(t, "x%2", p)

	// Test: invalid hex digits decode laxly instead of erroring
	p, err = Resolve("/x%zz", "index.html")
	require.NoError(t, err)
	assert.Equal(t, "x\x00", p)

	// Test: encoded traversal slips past the lexical filter (the
	// preserved gap: the filter never re-runs after decoding)
	p, err = Resolve("/%2E%2E/secret", "index.html")
	require.NoError(t, err)
	assert.Equal(t, "../secret", p)
}
