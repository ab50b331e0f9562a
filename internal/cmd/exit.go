// Package cmd provides CLI command implementations for the modmeta CLI.
package cmd

// Exit codes for the modmeta CLI.
const (
	// ExitSuccess indicates every module resolved and rendered cleanly.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitMalformedMetadata indicates a module carried a malformed
	// parameter record.
	ExitMalformedMetadata = 2

	// ExitRetrievalError indicates module metadata could not be read.
	ExitRetrievalError = 3

	// ExitNotFound indicates a module file or name was not found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitMalformedMetadata:
		return "Malformed Metadata"
	case ExitRetrievalError:
		return "Retrieval Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
