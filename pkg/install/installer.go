// pkg/install/installer.go

// Package install implements the install and remove transactions: it
// unpacks archive entries under the category roots of the install
// directory, records them in the package manifest, and reverses the
// whole thing on removal.
package install

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/instar-dev/instar/pkg/archive"
	"github.com/instar-dev/instar/pkg/core"
	"github.com/instar-dev/instar/pkg/manifest"
)

// Result reports what an install or removal touched. When an
// operation fails partway through, the counts cover the work done
// before the failure.
type Result struct {
	Files    int
	Dirs     int
	Symlinks int
	Skipped  int
}

// Installer unpacks archives under the install root and records every
// installed path in the package manifest.
type Installer struct {
	store  *manifest.Store
	logger *log.Logger
}

// NewInstaller returns an Installer recording manifests in store. A
// nil logger discards debug output.
func NewInstaller(store *manifest.Store, logger *log.Logger) *Installer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Installer{store: store, logger: logger}
}

// Install unpacks the archive at archivePath as the package name under
// installDir. Each installed path is appended to the manifest before
// the entry is materialized, so a failed install can still be cleaned
// up with remove. The manifest of a failed install is kept for exactly
// that reason.
func (in *Installer) Install(ctx context.Context, archivePath, name, installDir string) (*Result, error) {
	res := &Result{}

	if err := in.store.Ensure(); err != nil {
		return res, err
	}
	if in.store.Exists(name) {
		return res, fmt.Errorf("%w: %s", core.ErrAlreadyInstalled, name)
	}

	mapper, err := NewMapper(installDir, name)
	if err != nil {
		return res, err
	}

	r, err := archive.Open(archivePath)
	if err != nil {
		return res, err
	}
	defer r.Close()

	m, err := in.store.Create(name)
	if err != nil {
		return res, err
	}
	defer m.Close()

	in.logger.Printf("Installing %s under %s", name, mapper.Root())

	for {
		entry, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, err
		}

		dest, ok := mapper.Map(entry.Path)
		if !ok {
			in.logger.Printf("⚠️  Skipping %s: outside the category roots", entry.Path)
			res.Skipped++
			continue
		}

		switch {
		case entry.IsDir():
			if err := os.MkdirAll(dest, 0755); err != nil {
				return res, fmt.Errorf("%w %s: %w", core.ErrDirectoryCreate, dest, err)
			}
			in.logger.Printf("📁 Created directory: %s", dest)
			res.Dirs++

		case entry.IsSymlink():
			if err := m.Append(dest); err != nil {
				return res, err
			}
			if err := in.symlink(entry.Linkname, dest); err != nil {
				return res, err
			}
			in.logger.Printf("🔗 Created symlink: %s -> %s", dest, entry.Linkname)
			res.Symlinks++

		case entry.IsRegular():
			if err := m.Append(dest); err != nil {
				return res, err
			}
			if err := in.extract(entry.Body, dest, entry.Mode.Perm()); err != nil {
				return res, err
			}
			in.logger.Printf("📄 Extracted file: %s", dest)
			res.Files++

		default:
			in.logger.Printf("⚠️  Skipping unsupported entry type: %s", entry.Path)
			res.Skipped++
		}
	}

	if err := m.Close(); err != nil {
		return res, fmt.Errorf("closing manifest: %w", err)
	}

	in.logger.Printf("✓ Installed %s: %d files, %d dirs, %d symlinks, %d skipped",
		name, res.Files, res.Dirs, res.Symlinks, res.Skipped)
	return res, nil
}

// extract writes one regular file, creating parent directories the
// archive omitted.
func (in *Installer) extract(body io.Reader, dest string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("%w %s: %w", core.ErrDirectoryCreate, filepath.Dir(dest), err)
	}
	f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("%w %s: %w", core.ErrExtract, dest, err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return fmt.Errorf("%w %s: %w", core.ErrExtract, dest, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", core.ErrExtract, dest, err)
	}
	return nil
}

// symlink creates one symlink, replacing an existing link at dest.
func (in *Installer) symlink(target, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("%w %s: %w", core.ErrDirectoryCreate, filepath.Dir(dest), err)
	}
	os.Remove(dest)
	if err := os.Symlink(target, dest); err != nil {
		return fmt.Errorf("%w %s: %w", core.ErrExtract, dest, err)
	}
	return nil
}
