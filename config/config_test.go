package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	// the embedded file mirrors the hardcoded defaults
	def := Default()
	assert.Equal(t, def.Window.Title, cfg.Window.Title)
	assert.Equal(t, def.Tuning.MoveSpeed, cfg.Tuning.MoveSpeed)
	assert.Equal(t, def.Tuning.CoyoteTime, cfg.Tuning.CoyoteTime)
	assert.Equal(t, def.Camera.Smooth, cfg.Camera.Smooth)
}

func TestLoadCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	custom := []byte("window:\n  title: speedrun build\ntuning:\n  move_speed: 240\n")
	require.NoError(t, os.WriteFile(path, custom, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "speedrun build", cfg.Window.Title)
	assert.Equal(t, float32(240), cfg.Tuning.MoveSpeed)
	// untouched keys keep their defaults
	assert.Equal(t, Default().Tuning.JumpForce, cfg.Tuning.JumpForce)
	assert.Equal(t, Default().Window.Zoom, cfg.Window.Zoom)
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, Default(), cfg, "usable fallback even on error")
}

func TestLoadMalformedCustomFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
