// pkg/env/library.go
package env

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Library represents a found library file
type Library struct {
	Name     string // Library name (e.g., "ssl")
	Path     string // Absolute path to library file
	Version  string // Version if detected (e.g., "3" from libssl.so.3)
	IsStatic bool   // True for .a files
}

// libraryExtensions returns the suffixes tried when resolving a
// library name, shared before static
func libraryExtensions() []string {
	if runtime.GOOS == "darwin" {
		return []string{".dylib", ".a"}
	}
	return []string{".so", ".a"}
}

// FindLibrary searches the library directories for name and returns
// the first match, trying lib{name}{ext} before versioned variants
// like lib{name}.so.3. Returns nil when nothing matches.
func (e *Environment) FindLibrary(name string) *Library {
	for _, dir := range e.GetLibraryPaths() {
		for _, ext := range libraryExtensions() {
			filename := "lib" + name + ext
			fullPath := filepath.Join(dir, filename)

			if fileExists(fullPath) {
				return &Library{
					Name:     name,
					Path:     fullPath,
					IsStatic: ext == ".a",
				}
			}

			matches, _ := filepath.Glob(filepath.Join(dir, filename+".*"))
			if len(matches) > 0 {
				sort.Strings(matches)
				return &Library{
					Name:     name,
					Path:     matches[0],
					Version:  strings.TrimPrefix(filepath.Base(matches[0]), filename+"."),
					IsStatic: ext == ".a",
				}
			}
		}
	}

	return nil
}

// FindAllLibraries returns every library file under the library
// directories, sorted by path
func (e *Environment) FindAllLibraries() []*Library {
	var libraries []*Library

	for _, dir := range e.GetLibraryPaths() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			lib := parseLibraryName(entry.Name())
			if lib == nil {
				continue
			}
			lib.Path = filepath.Join(dir, entry.Name())
			libraries = append(libraries, lib)
		}
	}

	sort.Slice(libraries, func(i, j int) bool {
		return libraries[i].Path < libraries[j].Path
	})
	return libraries
}

// HasLibrary checks if a library exists in the environment
func (e *Environment) HasLibrary(name string) bool {
	return e.FindLibrary(name) != nil
}

// ListLibraryNames returns the distinct names of all libraries found,
// sorted
func (e *Environment) ListLibraryNames() []string {
	var names []string
	seen := make(map[string]bool)

	for _, lib := range e.FindAllLibraries() {
		if !seen[lib.Name] {
			names = append(names, lib.Name)
			seen[lib.Name] = true
		}
	}

	sort.Strings(names)
	return names
}

// parseLibraryName interprets a file name like libssl.so.3 or libz.a.
// Returns nil for names without a recognized library extension.
func parseLibraryName(filename string) *Library {
	for _, ext := range libraryExtensions() {
		var version string
		switch {
		case strings.HasSuffix(filename, ext):
			// libssl.so
		case strings.Contains(filename, ext+"."):
			// libssl.so.3
			version = filename[strings.Index(filename, ext+".")+len(ext)+1:]
		default:
			continue
		}

		name := strings.TrimPrefix(filename, "lib")
		name = name[:strings.Index(name, ext)]
		return &Library{
			Name:     name,
			Version:  version,
			IsStatic: ext == ".a",
		}
	}
	return nil
}
