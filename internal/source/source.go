// Package source reads match-result files for the standings pipeline.
// It transparently decompresses .gz and .xz files, which is how archived
// season exports usually arrive; anything else is read as plain text.
package source

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/Standings/core/errors"
)

// Read returns the full contents of the results file at path.
// Compression is detected by suffix. Any failure to open, read, or
// decompress the file is reported as a source-unavailable error.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewSource(path, err)
	}
	defer f.Close()

	var reader io.Reader = f

	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.NewSource(path, err)
		}
		reader = xzr
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.NewSource(path, err)
		}
		defer gzr.Close()
		reader = gzr
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewSource(path, err)
	}
	return data, nil
}
