package cmd

import (
	"errors"

	"github.com/modmeta/cli/internal/kmod"
	"github.com/modmeta/cli/internal/report"
)

// ErrRetrieval indicates metadata could not be read from a resolved module.
var ErrRetrieval = errors.New("metadata retrieval failed")

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Logged records that the command layer already reported the error,
	// so main must not print it again.
	Logged bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var malformedErr *report.MalformedRecordError
	switch {
	case errors.Is(err, kmod.ErrNotFound):
		return ExitNotFound
	case errors.As(err, &malformedErr):
		return ExitMalformedMetadata
	case errors.Is(err, ErrRetrieval):
		return ExitRetrievalError
	default:
		return ExitGeneralError
	}
}
