// pkg/core/paths.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	// ConfigFileName is the name of the configuration file inside the config dir
	ConfigFileName = "instar.cfg"
	// PackagesDirName is the name of the manifests directory inside the config dir
	PackagesDirName = "packages"
)

// Paths holds the process-wide filesystem locations for configuration and
// manifest state. They are resolved once at startup and threaded through
// explicitly instead of being re-read from the environment.
type Paths struct {
	ConfigDir   string // directory holding instar.cfg and packages/
	ConfigFile  string // full path to instar.cfg
	PackagesDir string // directory holding one manifest per installed package
}

// DefaultPaths resolves the per-user configuration locations. The
// INSTAR_CONFIG_DIR environment variable overrides the default
// $HOME/.config/instar.
//
// TODO: use a system-wide location when installing with elevated
// permissions instead of storing globally installed packages in the
// per-user config dir.
func DefaultPaths() (Paths, error) {
	dir := os.Getenv("INSTAR_CONFIG_DIR")
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return Paths{}, fmt.Errorf("resolving home directory: %w", err)
		}
		dir = filepath.Join(home, ".config", "instar")
	}
	return PathsIn(dir), nil
}

// PathsIn returns the configuration locations rooted at dir
func PathsIn(dir string) Paths {
	return Paths{
		ConfigDir:   dir,
		ConfigFile:  filepath.Join(dir, ConfigFileName),
		PackagesDir: filepath.Join(dir, PackagesDirName),
	}
}
