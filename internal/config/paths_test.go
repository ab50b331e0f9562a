package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFile_EnvOverride(t *testing.T) {
	t.Setenv("MODMETA_CONFIG", "/custom/config.yaml")

	path, err := GetConfigFile()

	require.NoError(t, err)
	assert.Equal(t, "/custom/config.yaml", path)
}

func TestGetConfigFile_Default(t *testing.T) {
	t.Setenv("MODMETA_CONFIG", "")

	path, err := GetConfigFile()

	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".modmeta", "config.yaml"), path)
}

func TestExpandPath_Tilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/custom/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "custom", "config.yaml"), expanded)

	expanded, err = ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, expanded)
}

func TestExpandPath_PlainPathUnchanged(t *testing.T) {
	expanded, err := ExpandPath("/etc/modmeta/config.yaml")

	require.NoError(t, err)
	assert.Equal(t, "/etc/modmeta/config.yaml", expanded)
}

func TestConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	exists, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("basedir: /\n"), 0o644))

	exists, err = ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}
