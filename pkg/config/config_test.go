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
	path := filepath.Join(t.TempDir(), "aquarelle.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2.0, cfg.SizeMultiplier)
	assert.Equal(t, 8.0, cfg.LineThickness)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
seed = 777
size-multiplier = 1.0
line-thickness = 12.0

[serve]
addr = ":9090"
cache-dir = "/tmp/aq"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(777), cfg.Seed)
	assert.Equal(t, 1.0, cfg.SizeMultiplier)
	assert.Equal(t, 12.0, cfg.LineThickness)
	assert.Equal(t, ":9090", cfg.Serve.Addr)
	assert.Equal(t, "/tmp/aq", cfg.Serve.CacheDir)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `seed = 7`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 2.0, cfg.SizeMultiplier)
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"seed too large", `seed = 1000000`},
		{"negative seed", `seed = -1`},
		{"multiplier too small", `size-multiplier = 0.1`},
		{"thickness too large", `line-thickness = 100.0`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestCanvasSize(t *testing.T) {
	cfg := Default()
	w, h := cfg.CanvasSize()
	assert.Equal(t, 2400, w)
	assert.Equal(t, 1200, h)

	cfg.SizeMultiplier = 0.5
	w, h = cfg.CanvasSize()
	assert.Equal(t, 600, w)
	assert.Equal(t, 300, h)
}
