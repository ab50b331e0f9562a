package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAll_FlagPrecedence(t *testing.T) {
	t.Setenv("MODMETA_BASEDIR", "/from/env")

	resolved := ResolveAll(ResolveOptions{
		BasedirFlag: "/from/flag",
		Config:      &Config{Basedir: "/from/config"},
	})

	assert.Equal(t, "/from/flag", resolved.Basedir.Value)
	assert.Equal(t, SourceFlag, resolved.Basedir.Source)
	assert.Equal(t, "/from/env", resolved.Basedir.Shadowed[SourceEnv])
	assert.Equal(t, "/from/config", resolved.Basedir.Shadowed[SourceConfig])
}

func TestResolveAll_EnvPrecedence(t *testing.T) {
	t.Setenv("MODMETA_KVERSION", "6.1.0-env")

	resolved := ResolveAll(ResolveOptions{
		Config: &Config{Kversion: "6.1.0-config"},
	})

	assert.Equal(t, "6.1.0-env", resolved.Kversion.Value)
	assert.Equal(t, SourceEnv, resolved.Kversion.Source)
	assert.Equal(t, "6.1.0-config", resolved.Kversion.Shadowed[SourceConfig])
	assert.NotContains(t, resolved.Kversion.Shadowed, SourceFlag)
}

func TestResolveAll_ConfigFallback(t *testing.T) {
	t.Setenv("MODMETA_BASEDIR", "")

	resolved := ResolveAll(ResolveOptions{
		Config: &Config{Basedir: "/from/config"},
	})

	assert.Equal(t, "/from/config", resolved.Basedir.Value)
	assert.Equal(t, SourceConfig, resolved.Basedir.Source)
	assert.Empty(t, resolved.Basedir.Shadowed)
}

func TestResolveAll_Defaults(t *testing.T) {
	t.Setenv("MODMETA_BASEDIR", "")
	t.Setenv("MODMETA_KVERSION", "")

	resolved := ResolveAll(ResolveOptions{})

	assert.Equal(t, DefaultBasedir, resolved.Basedir.Value)
	assert.Equal(t, SourceDefault, resolved.Basedir.Source)
	assert.Empty(t, resolved.Kversion.Value)
	assert.Equal(t, SourceDefault, resolved.Kversion.Source)
}

func TestResolveAll_NilConfig(t *testing.T) {
	resolved := ResolveAll(ResolveOptions{BasedirFlag: "/from/flag"})

	assert.Equal(t, "/from/flag", resolved.Basedir.Value)
}
