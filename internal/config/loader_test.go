package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modmeta/cli/internal/testutil"
)

func TestLoader_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", `
basedir: /srv/roots/target
kversion: 6.1.0-test
log:
  verbose: true
`)

	cfg, err := NewLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/roots/target", cfg.Basedir)
	assert.Equal(t, "6.1.0-test", cfg.Kversion)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("MODMETA_BASEDIR", "")
	t.Setenv("MODMETA_KVERSION", "")

	cfg, err := NewLoader().LoadWithDefaults(t.TempDir() + "/absent.yaml")

	require.NoError(t, err)
	assert.Equal(t, DefaultBasedir, cfg.Basedir)
	assert.Empty(t, cfg.Kversion)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "basedir: /from/file\n")
	t.Setenv("MODMETA_BASEDIR", "/from/env")

	cfg, err := NewLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Basedir)
}

func TestLoader_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "basedir: [not: valid\n")

	_, err := NewLoader().Load(path)

	assert.Error(t, err)
}
