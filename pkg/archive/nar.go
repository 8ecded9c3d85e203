// pkg/archive/nar.go
package archive

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"

	"zombiezen.com/go/nix/nar"

	"github.com/instar-dev/instar/pkg/core"
)

// narReader adapts a Nix archive to the Reader interface. NAR records
// only an executable bit for regular files, so modes come out as 0644
// or 0755.
type narReader struct {
	nr *nar.Reader
	f  *os.File
}

func newNarReader(f *os.File) (Reader, error) {
	return &narReader{nr: nar.NewReader(bufio.NewReader(f)), f: f}, nil
}

func (r *narReader) Next() (*Entry, error) {
	hdr, err := r.nr.Next()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrArchiveFormat, err)
	}

	entry := &Entry{Path: hdr.Path}
	switch hdr.Mode.Type() {
	case fs.ModeDir:
		entry.Mode = fs.ModeDir | 0755
	case fs.ModeSymlink:
		entry.Mode = fs.ModeSymlink | 0777
		entry.Linkname = hdr.LinkTarget
	case 0: // regular
		entry.Mode = 0644
		if hdr.Mode&0111 != 0 {
			entry.Mode = 0755
		}
		entry.Body = r.nr
	default:
		entry.Mode = fs.ModeIrregular
	}
	return entry, nil
}

func (r *narReader) Close() error { return r.f.Close() }
