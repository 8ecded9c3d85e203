// errors.go
package instar

import (
	"fmt"

	"github.com/instar-dev/instar/pkg/core"
)

// Sentinel errors, re-exported from pkg/core so callers can match
// failures against the instar package alone.
var (
	ErrArchiveOpen        = core.ErrArchiveOpen
	ErrArchiveFormat      = core.ErrArchiveFormat
	ErrInvalidArchiveName = core.ErrInvalidArchiveName
	ErrAlreadyInstalled   = core.ErrAlreadyInstalled
	ErrNotInstalled       = core.ErrNotInstalled
	ErrManifestDirCreate  = core.ErrManifestDirCreate
	ErrManifestCreate     = core.ErrManifestCreate
	ErrManifestDelete     = core.ErrManifestDelete
	ErrDirectoryCreate    = core.ErrDirectoryCreate
	ErrExtract            = core.ErrExtract
	ErrFileDelete         = core.ErrFileDelete
)

// Error wraps an error with the operation and package it came from
type Error struct {
	Op      string // Operation that failed: install, remove, list
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
