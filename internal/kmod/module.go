package kmod

import (
	"strings"

	"github.com/modmeta/cli/internal/report"
)

// Module is one resolved kernel module file.
type Module struct {
	// Path is the module's canonical filesystem path.
	Path string
}

// NewModule creates a Module for the given file path.
func NewModule(path string) *Module {
	return &Module{Path: path}
}

// Name returns the module's canonical name: the file's base name with
// extensions stripped and '-' normalized to '_'.
func (m *Module) Name() string {
	return NameFromPath(m.Path)
}

// Info reads the module file and returns its raw metadata records in
// section order. Compressed module files are decompressed transparently.
func (m *Module) Info() ([]report.Info, error) {
	image, err := openImage(m.Path)
	if err != nil {
		return nil, err
	}
	return readInfo(image)
}

// NameFromPath derives the canonical module name from a module file path.
func NameFromPath(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	for _, ext := range []string{".zst", ".xz", ".gz"} {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.TrimSuffix(base, ".ko")
	return normalizeName(base)
}

// normalizeName maps '-' to '_'; the kernel treats the two as equivalent
// in module names.
func normalizeName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
