package kmod

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// openImage reads a module file into memory, transparently decompressing
// .gz, .xz and .zst files. The compression format is chosen by file
// extension, the same way the kernel module tooling does.
func openImage(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader
	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening gzip module: %w", err)
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening xz module: %w", err)
		}
		r = xr
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening zstd module: %w", err)
		}
		defer zr.Close()
		r = zr
	default:
		r = f
	}

	image, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading module %s: %w", path, err)
	}
	return image, nil
}
