package kmod

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Index file names inside the modules directory, written by depmod.
const (
	fileDep   = "modules.dep"
	fileAlias = "modules.alias"
)

// index holds the name and alias lookup tables for one modules directory.
type index struct {
	// byName maps normalized module names to the relative paths of the
	// module files carrying that name, in modules.dep order.
	byName map[string][]string

	// aliases holds the alias patterns in modules.alias order.
	aliases []alias
}

type alias struct {
	pattern string
	name    string
}

// loadIndex reads the depmod indexes from dir. modules.dep is required;
// modules.alias is optional (depmod omits it when no module declares an
// alias).
func loadIndex(dir string) (*index, error) {
	idx := &index{byName: make(map[string][]string)}

	if err := idx.loadDep(filepath.Join(dir, fileDep)); err != nil {
		return nil, err
	}
	if err := idx.loadAlias(filepath.Join(dir, fileAlias)); err != nil {
		return nil, err
	}

	return idx, nil
}

// loadDep reads modules.dep: one "relative/path/to/module.ko: deps..."
// line per installed module.
func (x *index) loadDep(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading module index: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rel, _, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name := NameFromPath(rel)
		x.byName[name] = append(x.byName[name], rel)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading module index: %w", err)
	}
	return nil
}

// loadAlias reads modules.alias: "alias <pattern> <modulename>" lines.
// Patterns use shell-style wildcards.
func (x *index) loadAlias(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading alias index: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 || fields[0] != "alias" {
			continue
		}
		x.aliases = append(x.aliases, alias{pattern: fields[1], name: fields[2]})
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading alias index: %w", err)
	}
	return nil
}

// lookup resolves a module name or alias to the relative paths of the
// matching module files. Exact (normalized) name matches win; otherwise
// every alias whose pattern matches contributes its target module. The
// result preserves index order and is deduplicated.
func (x *index) lookup(name string) []string {
	if paths, ok := x.byName[normalizeName(name)]; ok {
		return paths
	}

	var (
		out  []string
		seen = make(map[string]bool)
	)
	for _, a := range x.aliases {
		ok, err := filepath.Match(a.pattern, name)
		if err != nil || !ok {
			continue
		}
		for _, rel := range x.byName[normalizeName(a.name)] {
			if seen[rel] {
				continue
			}
			seen[rel] = true
			out = append(out, rel)
		}
	}
	return out
}
