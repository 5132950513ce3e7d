package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{1, 9, 10}, cfg.Chart.DefaultVargas)
	assert.Equal(t, 3, cfg.Dasha.Depth)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Chart, cfg.Chart)
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Chart.DefaultVargas = []int{1, 2, 60}
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Chart.DefaultVargas, loaded.Chart.DefaultVargas)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart:\n  default_vargas: [1, 13]\n"), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "varga D13")

	require.NoError(t, os.WriteFile(path, []byte("dasha:\n  depth: 5\n"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "depth 5")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JYOTISH_LOG_LEVEL", "warn")
	t.Setenv("JYOTISH_DASHA_DEPTH", "2")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Dasha.Depth)
}
