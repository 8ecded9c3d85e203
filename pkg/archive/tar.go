// pkg/archive/tar.go
package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/instar-dev/instar/pkg/core"
)

// tarReader adapts archive/tar to the Reader interface.
type tarReader struct {
	tr     *tar.Reader
	closer io.Closer
}

func newTarGzReader(f *os.File) (Reader, error) {
	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	return &tarReader{tr: tar.NewReader(gz), closer: multiCloser{gz, f}}, nil
}

func newTarXzReader(f *os.File) (Reader, error) {
	x, err := xz.NewReader(f)
	if err != nil {
		return nil, err
	}
	return &tarReader{tr: tar.NewReader(x), closer: f}, nil
}

func (r *tarReader) Next() (*Entry, error) {
	hdr, err := r.tr.Next()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrArchiveFormat, err)
	}

	entry := &Entry{Path: hdr.Name}
	switch hdr.Typeflag {
	case tar.TypeDir:
		entry.Mode = fs.ModeDir | fs.FileMode(hdr.Mode).Perm()
	case tar.TypeSymlink:
		entry.Mode = fs.ModeSymlink | fs.FileMode(hdr.Mode).Perm()
		entry.Linkname = hdr.Linkname
	case tar.TypeReg:
		entry.Mode = fs.FileMode(hdr.Mode).Perm()
		entry.Body = r.tr
	default:
		// Hard links, devices, FIFOs
		entry.Mode = fs.ModeIrregular
	}
	return entry, nil
}

func (r *tarReader) Close() error { return r.closer.Close() }
