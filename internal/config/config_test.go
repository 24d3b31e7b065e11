package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Test: built-in defaults
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 8192, cfg.Server.ReadBufferSize)
	assert.Equal(t, "index.html", cfg.Files.DefaultDocument)
	assert.Equal(t, ".", cfg.Files.Root)
	assert.Equal(t, ":8080", cfg.ServerAddress())

	// Test: environment overrides
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("FILE_ROOT", "/srv/www")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1:9090", cfg.ServerAddress())
	assert.Equal(t, "/srv/www", cfg.Files.Root)

	// Test: garbage PORT falls back to the default
	t.Setenv("PORT", "not-a-number")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	data := []byte(`
server:
  port: 8888
  name: gohttpd-test/0.0
  read_timeout: 2s
files:
  root: testdata
  default_document: home.html
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8888, cfg.Server.Port)
	assert.Equal(t, "gohttpd-test/0.0", cfg.Server.Name)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "testdata", cfg.Files.Root)
	assert.Equal(t, "home.html", cfg.Files.DefaultDocument)
	// Unset fields keep their defaults.
	assert.Equal(t, 8192, cfg.Server.ReadBufferSize)

	// Test: env still wins over the file
	t.Setenv("PORT", "8889")
	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8889, cfg.Server.Port)

	// Test: missing file
	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 70000
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.ReadBufferSize = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.ReadTimeout = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Files.DefaultDocument = ""
	require.Error(t, cfg.Validate())

	// Port 0 stays valid for ephemeral binds.
	cfg = Default()
	cfg.Server.Port = 0
	require.NoError(t, cfg.Validate())
}
