package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mijawharati", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "data/mijawharati.db", cfg.Database.Path)
	assert.Equal(t, "data/images", cfg.Assets.Root)
	assert.Equal(t, 10*time.Second, cfg.Assets.StoreTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  env: production
database:
  type: memory
assets:
  root: /var/lib/mijawharati/images
  store_timeout: 3s
log:
  level: error
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "memory", cfg.Database.Type)
	assert.Equal(t, "/var/lib/mijawharati/images", cfg.Assets.Root)
	assert.Equal(t, 3*time.Second, cfg.Assets.StoreTimeout)
	assert.Equal(t, "error", cfg.Log.Level)

	// Values absent from the file keep their defaults.
	assert.Equal(t, "mijawharati", cfg.App.Name)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
