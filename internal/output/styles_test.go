package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyled_NonTerminalIsPlain(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "sink"))
	require.NoError(t, err)
	defer f.Close()

	// A regular file is not a terminal, so no escape sequences leak into
	// redirected output.
	assert.False(t, IsTerminal(f))
	assert.Equal(t, "plain", Styled(f, StyleHeading, "plain"))
}
