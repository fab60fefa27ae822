package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Fleet)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tramway.yaml")
	content := `
listen: ":9090"
log_level: debug
redis:
  addr: "localhost:6379"
  db: 2
journal:
  cap: 100
fleet:
  - line-1
  - line-2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 100, cfg.Journal.Cap)
	assert.Equal(t, []string{"line-1", "line-2"}, cfg.Fleet)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tramway.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
