// pkg/archive/archive.go
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/instar-dev/instar/pkg/core"
)

// formats maps each recognized suffix to its opener, checked in order.
var formats = []struct {
	suffix string
	open   func(f *os.File) (Reader, error)
}{
	{".tar.gz", newTarGzReader},
	{".tar.xz", newTarXzReader},
	{".cpio.gz", newCpioGzReader},
	{".nar", newNarReader},
}

// PackageName derives the package name from an archive path: the base
// name with its recognized suffix trimmed. A path with no recognized
// suffix, or with nothing before it, yields ErrInvalidArchiveName.
func PackageName(path string) (string, error) {
	base := filepath.Base(path)
	for _, f := range formats {
		if strings.HasSuffix(base, f.suffix) && len(base) > len(f.suffix) {
			return strings.TrimSuffix(base, f.suffix), nil
		}
	}
	return "", fmt.Errorf("%w: %s", core.ErrInvalidArchiveName, base)
}

// Open opens the archive at path, selecting the decoder from the file
// name suffix. The caller must close the returned Reader.
func Open(path string) (Reader, error) {
	base := filepath.Base(path)
	for _, format := range formats {
		if !strings.HasSuffix(base, format.suffix) || len(base) <= len(format.suffix) {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", core.ErrArchiveOpen, path, err)
		}
		r, err := format.open(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w %s: %w", core.ErrArchiveFormat, path, err)
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w: %s", core.ErrInvalidArchiveName, base)
}

// multiCloser closes a decompressor followed by its backing file.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
