// pkg/manifest/manifest.go

// Package manifest stores per-package install manifests: one file per
// installed package, one installed path per line, in install order.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/instar-dev/instar/pkg/core"
)

// Store manages the packages directory holding the manifests.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory itself is
// created lazily by Ensure.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the packages directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the manifest file path for a package.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Ensure creates the packages directory if it does not exist.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("%w %s: %w", core.ErrManifestDirCreate, s.dir, err)
	}
	return nil
}

// Exists reports whether a manifest for the package is present.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Create opens a fresh manifest for the package. It fails with
// ErrAlreadyInstalled when one is already present.
func (s *Store) Create(name string) (*Manifest, error) {
	f, err := os.OpenFile(s.Path(name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrAlreadyInstalled, name)
		}
		return nil, fmt.Errorf("%w %s: %w", core.ErrManifestCreate, name, err)
	}
	return &Manifest{f: f}, nil
}

// Read returns the recorded paths for a package in install order.
func (s *Store) Read(name string) ([]string, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrNotInstalled, name)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", name, err)
	}
	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}

// Remove deletes the manifest for a package.
func (s *Store) Remove(name string) error {
	if err := os.Remove(s.Path(name)); err != nil {
		return fmt.Errorf("%w %s: %w", core.ErrManifestDelete, name, err)
	}
	return nil
}

// List returns the installed package names in sorted order. A missing
// packages directory means nothing is installed.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading packages directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), lockSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Manifest is an open manifest being written during an install. Each
// path is recorded before the entry is materialized, so an interrupted
// install never leaves files the manifest does not know about.
type Manifest struct {
	f *os.File
}

// Append records one installed path as a line.
func (m *Manifest) Append(path string) error {
	if _, err := fmt.Fprintln(m.f, path); err != nil {
		return fmt.Errorf("%w: %w", core.ErrManifestCreate, err)
	}
	return nil
}

// Close closes the manifest file.
func (m *Manifest) Close() error {
	return m.f.Close()
}
