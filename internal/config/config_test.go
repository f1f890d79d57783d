package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chunkview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1280
  height: 720
terrain:
  seed: 42
render:
  wireframe: true
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, "chunkview", cfg.Window.Title)
	assert.Equal(t, int64(42), cfg.Terrain.Seed)
	assert.Equal(t, 0.08, cfg.Terrain.Scale)
	assert.True(t, cfg.Render.Wireframe)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "terrain:\n  seed: 7\n")
	t.Setenv(EnvConfigPath, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Terrain.Seed)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "window: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "window:\n  width: 0\n"))
	assert.ErrorContains(t, err, "window size")

	_, err = Load(writeConfig(t, "terrain:\n  scale: -1\n"))
	assert.ErrorContains(t, err, "scale")
}

func TestRenderSettings(t *testing.T) {
	ApplyRender(RenderConfig{Wireframe: false, FPSLimit: 60})
	assert.False(t, GetWireframe())
	assert.True(t, ToggleWireframe())
	assert.True(t, GetWireframe())
	assert.Equal(t, 60, GetFPSLimit())

	SetFPSLimit(-5)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(5000)
	assert.Equal(t, 1000, GetFPSLimit())
	SetWireframe(false)
}
