// pkg/core/errors.go
package core

import "errors"

var (
	// ErrArchiveOpen indicates the archive source could not be opened
	ErrArchiveOpen = errors.New("cannot open archive")

	// ErrArchiveFormat indicates decompression or archive parsing failed
	ErrArchiveFormat = errors.New("malformed archive")

	// ErrInvalidArchiveName indicates the archive file name has no recognized suffix
	ErrInvalidArchiveName = errors.New("not a recognized archive name")

	// ErrAlreadyInstalled indicates a manifest for the package already exists
	ErrAlreadyInstalled = errors.New("package is already installed")

	// ErrNotInstalled indicates no manifest exists for the package
	ErrNotInstalled = errors.New("package is not installed")

	// ErrManifestDirCreate indicates the packages directory could not be created
	ErrManifestDirCreate = errors.New("cannot create packages directory")

	// ErrManifestCreate indicates the package manifest could not be created
	ErrManifestCreate = errors.New("cannot create manifest")

	// ErrManifestDelete indicates the package manifest could not be deleted
	ErrManifestDelete = errors.New("cannot delete manifest")

	// ErrDirectoryCreate indicates a destination directory could not be created
	ErrDirectoryCreate = errors.New("cannot create directory")

	// ErrExtract indicates an archive entry could not be written to its destination
	ErrExtract = errors.New("cannot extract file")

	// ErrFileDelete indicates an installed file could not be deleted
	ErrFileDelete = errors.New("cannot delete file")
)
