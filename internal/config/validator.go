package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a list of validation failures.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks a loaded configuration against the schema rules.
// It returns ValidationErrors listing every violation, or nil.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.Basedir != "" && !filepath.IsAbs(cfg.Basedir) {
		errs = append(errs, ValidationError{
			Field:   "basedir",
			Message: fmt.Sprintf("must be an absolute path, got %q", cfg.Basedir),
		})
	}

	if strings.Contains(cfg.Kversion, "/") {
		errs = append(errs, ValidationError{
			Field:   "kversion",
			Message: fmt.Sprintf("must be a bare kernel release, got %q", cfg.Kversion),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
