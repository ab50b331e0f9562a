package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_RelativeBasedir(t *testing.T) {
	err := Validate(&Config{Basedir: "relative/root"})

	require.Error(t, err)
	errs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "basedir", errs[0].Field)
}

func TestValidate_KversionWithSlash(t *testing.T) {
	err := Validate(&Config{Basedir: "/", Kversion: "../escape"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "kversion")
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	err := Validate(&Config{Basedir: "relative", Kversion: "a/b"})

	errs, ok := err.(ValidationErrors)
	require.True(t, ok)
	assert.Len(t, errs, 2)
}
