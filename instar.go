// instar.go
package instar

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/instar-dev/instar/pkg/archive"
	"github.com/instar-dev/instar/pkg/core"
	"github.com/instar-dev/instar/pkg/install"
	"github.com/instar-dev/instar/pkg/manifest"
)

// Re-export the core types for convenience
type (
	Config   = core.Config
	Paths    = core.Paths
	Category = core.Category
	Result   = install.Result
)

// Re-export the category roots
const (
	CategoryBin     = core.CategoryBin
	CategoryEtc     = core.CategoryEtc
	CategoryInclude = core.CategoryInclude
	CategoryLib     = core.CategoryLib
	CategoryShare   = core.CategoryShare
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// LoadConfig loads the configuration file at path
func LoadConfig(path string) (*Config, error) {
	return core.LoadConfig(path)
}

// SaveConfig writes the configuration file at path
func SaveConfig(cfg *Config, path string) error {
	return core.SaveConfig(cfg, path)
}

// DefaultPaths returns the per-user configuration layout
func DefaultPaths() (Paths, error) {
	return core.DefaultPaths()
}

// PathsIn returns the configuration layout rooted at dir
func PathsIn(dir string) Paths {
	return core.PathsIn(dir)
}

// PackageName derives the package name from an archive path
func PackageName(path string) (string, error) {
	return archive.PackageName(path)
}

// Categories returns the five category roots in stable order
func Categories() []Category {
	return core.Categories()
}

// Options configure a Manager beyond the user's config file.
type Options struct {
	// Paths overrides the default configuration layout. Nil uses
	// ~/.config/instar, or $INSTAR_CONFIG_DIR when set.
	Paths *Paths

	// Config overrides the configuration instead of loading it from
	// Paths.ConfigFile.
	Config *Config

	// Logger receives transaction logging. Nil with Debug set logs
	// to stderr.
	Logger *log.Logger

	// Debug enables per-entry logging.
	Debug bool
}

// Manager runs install and remove transactions for one configuration
// directory, serialized per package by an advisory lock.
type Manager struct {
	paths     Paths
	config    *Config
	store     *manifest.Store
	installer *install.Installer
	remover   *install.Remover
	logger    *log.Logger
}

// NewManager creates a new package manager
func NewManager(opts *Options) (*Manager, error) {
	if opts == nil {
		opts = &Options{}
	}

	paths := Paths{}
	if opts.Paths != nil {
		paths = *opts.Paths
	} else {
		p, err := core.DefaultPaths()
		if err != nil {
			return nil, fmt.Errorf("resolving config directory: %w", err)
		}
		paths = p
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := core.LoadConfig(paths.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Setup logger
	logger := opts.Logger
	if logger == nil {
		if opts.Debug {
			logger = log.New(os.Stderr, "[instar] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	store := manifest.NewStore(paths.PackagesDir)

	return &Manager{
		paths:     paths,
		config:    cfg,
		store:     store,
		installer: install.NewInstaller(store, logger),
		remover:   install.NewRemover(store, logger),
		logger:    logger,
	}, nil
}

// InstallDir returns the root the manager installs under.
func (m *Manager) InstallDir() string {
	return m.config.InstallDir
}

// Install unpacks the archive at archivePath under the install
// directory and records the package as installed. The package name is
// derived from the archive file name. The returned Result counts the
// work done even when the install fails partway through.
func (m *Manager) Install(ctx context.Context, archivePath string) (*Result, error) {
	name, err := archive.PackageName(archivePath)
	if err != nil {
		return &Result{}, &Error{Op: "install", Err: err}
	}

	if err := m.store.Ensure(); err != nil {
		return &Result{}, &Error{Op: "install", Package: name, Err: err}
	}
	lock, err := m.store.Lock(name)
	if err != nil {
		return &Result{}, &Error{Op: "install", Package: name, Err: err}
	}
	defer lock.Release()

	res, err := m.installer.Install(ctx, archivePath, name, m.config.InstallDir)
	if err != nil {
		return res, &Error{Op: "install", Package: name, Err: err}
	}
	return res, nil
}

// Remove deletes every file the named package installed, prunes
// directories the deletions emptied, and forgets the package.
func (m *Manager) Remove(ctx context.Context, name string) (*Result, error) {
	if err := m.store.Ensure(); err != nil {
		return &Result{}, &Error{Op: "remove", Package: name, Err: err}
	}
	lock, err := m.store.Lock(name)
	if err != nil {
		return &Result{}, &Error{Op: "remove", Package: name, Err: err}
	}
	defer lock.Release()

	res, err := m.remover.Remove(ctx, name, m.config.InstallDir)
	if err != nil {
		return res, &Error{Op: "remove", Package: name, Err: err}
	}
	return res, nil
}

// List returns the installed package names in sorted order.
func (m *Manager) List() ([]string, error) {
	names, err := m.store.List()
	if err != nil {
		return nil, &Error{Op: "list", Err: err}
	}
	return names, nil
}

// Installed reports whether a package is currently installed.
func (m *Manager) Installed(name string) bool {
	return m.store.Exists(name)
}

// Files returns the paths the named package installed, in install
// order.
func (m *Manager) Files(name string) ([]string, error) {
	paths, err := m.store.Read(name)
	if err != nil {
		return nil, &Error{Op: "files", Package: name, Err: err}
	}
	return paths, nil
}
