package kmod

import (
	"bytes"
	"debug/elf"
	"fmt"
	"strings"

	"github.com/modmeta/cli/internal/report"
)

// sectionModinfo is the ELF section holding module metadata: a
// NUL-separated sequence of key=value entries.
const sectionModinfo = ".modinfo"

// readInfo parses a module image and returns the records of its .modinfo
// section in section order.
func readInfo(image []byte) ([]report.Info, error) {
	f, err := elf.NewFile(bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("parsing module image: %w", err)
	}
	defer f.Close()

	sec := f.Section(sectionModinfo)
	if sec == nil {
		return nil, fmt.Errorf("no %s section", sectionModinfo)
	}

	data, err := sec.Data()
	if err != nil {
		return nil, fmt.Errorf("reading %s section: %w", sectionModinfo, err)
	}

	return parseInfo(data), nil
}

// parseInfo splits a .modinfo payload into key/value records. Empty
// entries and entries without '=' are skipped.
func parseInfo(data []byte) []report.Info {
	var infos []report.Info
	for _, entry := range bytes.Split(data, []byte{0}) {
		if len(entry) == 0 {
			continue
		}
		key, value, ok := strings.Cut(string(entry), "=")
		if !ok {
			continue
		}
		infos = append(infos, report.Info{Key: key, Value: value})
	}
	return infos
}
