// pkg/env/environment.go
package env

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/instar-dev/instar/pkg/core"
)

// Environment exposes the search paths of an install root. All path
// getters return only directories that actually exist, so an empty
// install tree yields empty results everywhere.
type Environment struct {
	root string
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
}

// New returns an Environment rooted at installDir
func New(installDir string) *Environment {
	abs, err := filepath.Abs(installDir)
	if err != nil {
		abs = installDir
	}
	return &Environment{root: abs}
}

// Root returns the absolute install root
func (e *Environment) Root() string {
	return e.root
}

// GetBinaryPaths returns the executable directories under the root
func (e *Environment) GetBinaryPaths() []string {
	return e.existing(string(core.CategoryBin))
}

// GetIncludePaths returns the header directories under the root
func (e *Environment) GetIncludePaths() []string {
	return e.existing(string(core.CategoryInclude))
}

// GetLibraryPaths returns the library directories under the root
func (e *Environment) GetLibraryPaths() []string {
	return e.existing(string(core.CategoryLib))
}

// GetPkgConfigPaths returns the pkg-config directories under the root
func (e *Environment) GetPkgConfigPaths() []string {
	return e.existing(
		filepath.Join(string(core.CategoryLib), "pkgconfig"),
		filepath.Join(string(core.CategoryShare), "pkgconfig"),
	)
}

// GetManPaths returns the manual page directories under the root
func (e *Environment) GetManPaths() []string {
	return e.existing(filepath.Join(string(core.CategoryShare), "man"))
}

// GetCompilerFlags returns -I and -L flags for the include and library
// directories that exist under the root
func (e *Environment) GetCompilerFlags() *CompilerFlags {
	flags := &CompilerFlags{}

	for _, dir := range e.GetIncludePaths() {
		flags.IncludeFlags = append(flags.IncludeFlags, "-I"+dir)
	}
	for _, dir := range e.GetLibraryPaths() {
		flags.LibraryFlags = append(flags.LibraryFlags, "-L"+dir)
	}

	return flags
}

// GetExports returns POSIX export statements that put the install
// root's directories on the relevant search paths. Variables whose
// directories do not exist produce no line.
func (e *Environment) GetExports() []string {
	var lines []string

	appendVar := func(name string, dirs []string) {
		if len(dirs) == 0 {
			return
		}
		lines = append(lines, fmt.Sprintf("export %s=\"%s:$%s\"", name, strings.Join(dirs, ":"), name))
	}

	appendVar("PATH", e.GetBinaryPaths())
	appendVar("CPATH", e.GetIncludePaths())
	appendVar("LIBRARY_PATH", e.GetLibraryPaths())
	appendVar("LD_LIBRARY_PATH", e.GetLibraryPaths())
	appendVar("PKG_CONFIG_PATH", e.GetPkgConfigPaths())
	appendVar("MANPATH", e.GetManPaths())

	return lines
}

// GetActivationScript returns the export statements as one script,
// ready for eval "$(instar env)". Returns "" when nothing is installed.
func (e *Environment) GetActivationScript() string {
	exports := e.GetExports()
	if len(exports) == 0 {
		return ""
	}
	return strings.Join(exports, "\n") + "\n"
}

// existing joins each relative dir to the root and keeps the ones that
// exist as directories
func (e *Environment) existing(rels ...string) []string {
	var dirs []string
	for _, rel := range rels {
		dir := filepath.Join(e.root, rel)
		if dirExists(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
