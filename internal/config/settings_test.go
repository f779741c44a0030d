package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "zh", s.Language)
	assert.Equal(t, int64(0), s.Seed)
	assert.True(t, s.Audio.Enabled)
	assert.InDelta(t, 0.3, s.Audio.Volume, 1e-9)
	assert.Equal(t, 1.0, s.Window.Scale)
	assert.False(t, s.Metrics.Enabled)
	assert.Equal(t, 10*time.Second, s.Metrics.Interval)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"language": "en",
		"seed": 42,
		"audio": { "enabled": false, "volume": 3 },
		"window": { "scale": 1.5 },
		"metrics": { "enabled": true, "interval": "2s" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, int64(42), s.Seed)
	assert.False(t, s.Audio.Enabled)
	assert.Equal(t, 1.0, s.Audio.Volume, "volume is clamped")
	assert.Equal(t, 1.5, s.Window.Scale)
	assert.True(t, s.Metrics.Enabled)
	assert.Equal(t, 2*time.Second, s.Metrics.Interval)
}

func TestLoad_UnknownLanguageFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName), []byte(`{"language": "fr"}`), 0644))

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "zh", s.Language)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName), []byte(`{not json`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("NOVA_LOGLEVEL", "warn")

	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "warn", s.LogLevel)
}
