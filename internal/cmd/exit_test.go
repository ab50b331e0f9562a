package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modmeta/cli/internal/kmod"
	"github.com/modmeta/cli/internal/report"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"exit error wins", NewExitError(errors.New("boom"), ExitNotFound), ExitNotFound},
		{"not found sentinel", fmt.Errorf("module %q: %w", "foo", kmod.ErrNotFound), ExitNotFound},
		{"malformed record", &report.MalformedRecordError{Key: "parm", Value: "bad"}, ExitMalformedMetadata},
		{"retrieval", fmt.Errorf("%w: no .modinfo section", ErrRetrieval), ExitRetrievalError},
		{"unknown", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Malformed Metadata", ExitCodeName(ExitMalformedMetadata))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}

func TestExitError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("module %q: %w", "foo", kmod.ErrNotFound)
	err := NewExitError(cause, ExitNotFound)

	assert.ErrorIs(t, err, kmod.ErrNotFound)
	assert.Equal(t, cause.Error(), err.Error())
}
