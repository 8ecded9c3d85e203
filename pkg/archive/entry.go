// pkg/archive/entry.go
package archive

import (
	"io"
	"io/fs"
)

// Entry is a single item read from a package archive.
type Entry struct {
	// Path is the slash-separated path recorded in the archive.
	Path string

	// Mode holds the entry's type and permission bits. Entries the
	// archive formats can carry but instar does not install, such as
	// hard links and device nodes, surface as fs.ModeIrregular.
	Mode fs.FileMode

	// Linkname is the target of a symlink entry, empty otherwise.
	Linkname string

	// Body reads the contents of a regular file entry. It is valid
	// only until the next call to Next.
	Body io.Reader
}

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool { return e.Mode.IsDir() }

// IsSymlink reports whether the entry is a symbolic link.
func (e *Entry) IsSymlink() bool { return e.Mode&fs.ModeSymlink != 0 }

// IsRegular reports whether the entry is a regular file.
func (e *Entry) IsRegular() bool { return e.Mode.IsRegular() }

// Reader iterates over the entries of an archive in order.
type Reader interface {
	// Next returns the next entry, or io.EOF after the last one.
	Next() (*Entry, error)

	// Close releases the underlying file and decompressor.
	Close() error
}
