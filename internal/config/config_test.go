package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "speedrun.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadFileFull(t *testing.T) {
	path := writeConfig(t, `
user_agent: "speedrun-test/1.0"
speed_unit: bytes-binary
interactive: true
custom_servers:
  - name: Local
    url: http://localhost:8080/100MB.bin
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "speedrun-test/1.0", cfg.UserAgent)
	assert.Equal(t, "bytes-binary", cfg.SpeedUnit)
	assert.True(t, cfg.Interactive)
	require.Len(t, cfg.CustomServers, 1)
	assert.Equal(t, "Local", cfg.CustomServers[0].Name)
	assert.Equal(t, "http://localhost:8080/100MB.bin", cfg.CustomServers[0].URL)
}

func TestLoadFileFillsDefaults(t *testing.T) {
	path := writeConfig(t, `interactive: true`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, "bits-metric", cfg.SpeedUnit)
	assert.True(t, cfg.Interactive)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := writeConfig(t, "user_agent: [unclosed")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, "bits-metric", cfg.SpeedUnit)
	assert.False(t, cfg.Interactive)
	assert.Empty(t, cfg.CustomServers)
}
