// pkg/archive/cpio.go
package archive

import (
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/cavaliergopher/cpio"

	"github.com/instar-dev/instar/pkg/core"
)

// cpioReader adapts a gzip-compressed cpio stream, the payload format
// rpm uses, to the Reader interface.
type cpioReader struct {
	cr     *cpio.Reader
	closer io.Closer
}

func newCpioGzReader(f *os.File) (Reader, error) {
	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	return &cpioReader{cr: cpio.NewReader(gz), closer: multiCloser{gz, f}}, nil
}

func (r *cpioReader) Next() (*Entry, error) {
	hdr, err := r.cr.Next()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrArchiveFormat, err)
	}

	entry := &Entry{Path: hdr.Name}
	switch {
	case hdr.Mode.IsDir():
		entry.Mode = fs.ModeDir | fs.FileMode(hdr.Mode.Perm())
	case hdr.Mode&0170000 == 0120000: // symlink
		entry.Mode = fs.ModeSymlink | fs.FileMode(hdr.Mode.Perm())
		entry.Linkname = hdr.Linkname
		if entry.Linkname == "" && hdr.Size > 0 {
			// newc stores the target as the entry body
			target := make([]byte, hdr.Size)
			if _, err := io.ReadFull(r.cr, target); err != nil {
				return nil, fmt.Errorf("%w: %w", core.ErrArchiveFormat, err)
			}
			entry.Linkname = string(target)
		}
	case hdr.Mode.IsRegular():
		entry.Mode = fs.FileMode(hdr.Mode.Perm())
		entry.Body = r.cr
	default:
		entry.Mode = fs.ModeIrregular
	}
	return entry, nil
}

func (r *cpioReader) Close() error { return r.closer.Close() }
