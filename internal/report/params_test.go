package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_MergesByName(t *testing.T) {
	params, malformed := Params([]Info{
		{Key: "parm", Value: "debug:enable debug"},
		{Key: "parmtype", Value: "debug:bool"},
	})

	require.Empty(t, malformed)
	require.Len(t, params, 1)
	assert.Equal(t, Param{Name: "debug", Description: "enable debug", Type: "bool"}, params[0])
}

func TestParams_MergeIsCommutative(t *testing.T) {
	forward, _ := Params([]Info{
		{Key: "parm", Value: "debug:enable debug"},
		{Key: "parmtype", Value: "debug:bool"},
	})
	backward, _ := Params([]Info{
		{Key: "parmtype", Value: "debug:bool"},
		{Key: "parm", Value: "debug:enable debug"},
	})

	assert.Equal(t, forward, backward)
}

func TestParams_FirstSeenOrder(t *testing.T) {
	params, malformed := Params([]Info{
		{Key: "parmtype", Value: "zeta:int"},
		{Key: "parm", Value: "alpha:first"},
		{Key: "parm", Value: "zeta:last word"},
		{Key: "parmtype", Value: "alpha:bool"},
	})

	require.Empty(t, malformed)
	require.Len(t, params, 2)
	assert.Equal(t, "zeta", params[0].Name)
	assert.Equal(t, "alpha", params[1].Name)
}

func TestParams_LaterRecordOverwritesSameField(t *testing.T) {
	params, _ := Params([]Info{
		{Key: "parm", Value: "debug:old description"},
		{Key: "parm", Value: "debug:new description"},
	})

	require.Len(t, params, 1)
	assert.Equal(t, "new description", params[0].Description)
}

func TestParams_NameMatchIsCaseSensitive(t *testing.T) {
	params, _ := Params([]Info{
		{Key: "parm", Value: "Debug:upper"},
		{Key: "parm", Value: "debug:lower"},
	})

	require.Len(t, params, 2)
	assert.Equal(t, "Debug", params[0].Name)
	assert.Equal(t, "debug", params[1].Name)
}

func TestParams_MalformedRecordSkipped(t *testing.T) {
	params, malformed := Params([]Info{
		{Key: "parm", Value: "alpha:kept"},
		{Key: "parm", Value: "bad-no-colon"},
		{Key: "parmtype", Value: "alpha:bool"},
	})

	// The malformed record neither creates an entry nor halts processing;
	// the records around it still merge.
	require.Len(t, malformed, 1)
	assert.ErrorContains(t, malformed[0], "missing ':'")
	require.Len(t, params, 1)
	assert.Equal(t, Param{Name: "alpha", Description: "kept", Type: "bool"}, params[0])
}

func TestParams_IgnoresOtherKeys(t *testing.T) {
	params, malformed := Params([]Info{
		{Key: "author", Value: "A. One"},
		{Key: "depends", Value: "usbcore"},
	})

	assert.Empty(t, params)
	assert.Empty(t, malformed)
}

func TestParams_EmptyInput(t *testing.T) {
	params, malformed := Params(nil)

	assert.Empty(t, params)
	assert.Empty(t, malformed)
}
