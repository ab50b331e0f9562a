// Package kmod locates kernel modules on disk and extracts the metadata
// embedded in their .modinfo ELF section.
//
// A Context is bound to one modules directory
// (<basedir>/lib/modules/<kversion>) and resolves module identifiers —
// either file paths or module names/aliases — into Modules. Resolution
// consults the modules.dep and modules.alias indexes the way the kernel
// module tooling does: names match the installed module file's base name
// with '-' and '_' interchangeable, aliases match shell-style wildcard
// patterns.
package kmod

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound indicates a module identifier resolved to nothing.
var ErrNotFound = errors.New("module not found")

// Options configures a Context.
type Options struct {
	// Basedir is the filesystem root prepended to /lib/modules.
	// Empty means "/".
	Basedir string

	// Kversion is the kernel release whose modules directory is used.
	// Empty means the running kernel's release.
	Kversion string
}

// Context resolves module identifiers against one modules directory.
type Context struct {
	dir string

	// idx is loaded lazily on the first name lookup; file-path
	// identifiers never touch the indexes.
	idx    *index
	idxErr error
}

// New creates a Context for the modules directory selected by opts.
func New(opts Options) (*Context, error) {
	kversion := opts.Kversion
	if kversion == "" {
		var err error
		kversion, err = KernelRelease()
		if err != nil {
			return nil, fmt.Errorf("detecting kernel release: %w", err)
		}
	}

	basedir := opts.Basedir
	if basedir == "" {
		basedir = "/"
	}

	return &Context{dir: filepath.Join(basedir, "lib", "modules", kversion)}, nil
}

// Dir returns the modules directory this Context resolves names against.
func (c *Context) Dir() string {
	return c.dir
}

// Resolve expands a module identifier into the modules it names. An
// identifier naming an existing regular file yields exactly that module;
// anything else is looked up as a module name or alias and may expand to
// several modules. Zero matches is ErrNotFound.
func (c *Context) Resolve(identifier string) ([]*Module, error) {
	if fi, err := os.Stat(identifier); err == nil && fi.Mode().IsRegular() {
		return []*Module{NewModule(identifier)}, nil
	}
	return c.lookup(identifier)
}

func (c *Context) lookup(name string) ([]*Module, error) {
	if c.idx == nil && c.idxErr == nil {
		c.idx, c.idxErr = loadIndex(c.dir)
	}
	if c.idxErr != nil {
		return nil, fmt.Errorf("module %q: %w: %w", name, ErrNotFound, c.idxErr)
	}

	paths := c.idx.lookup(name)
	if len(paths) == 0 {
		return nil, fmt.Errorf("module %q: %w", name, ErrNotFound)
	}

	mods := make([]*Module, len(paths))
	for i, rel := range paths {
		mods[i] = NewModule(filepath.Join(c.dir, rel))
	}
	return mods, nil
}
