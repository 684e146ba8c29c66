package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.DefaultWidth)
	require.Equal(t, 10, cfg.DefaultBase)
	require.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoad_RejectsUnsupportedWidth(t *testing.T) {
	path := writeConfig(t, "default_width: 48\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsUnsupportedBase(t *testing.T) {
	path := writeConfig(t, "default_base: 16\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestGet_ReturnsLastLoaded(t *testing.T) {
	path := writeConfig(t, "default_width: 128\n")
	_, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 128, Get().DefaultWidth)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
