// pkg/env/doc.go
package env

/*
Package env derives shell and compiler settings from an instar install
root.

It handles:
  - Discovering the bin, include, lib and share search paths that exist
    under the install directory
  - Generating compiler and linker flags
  - Finding installed libraries by name
  - Rendering an activation script for shell environments

Basic Usage:

    import "github.com/instar-dev/instar/pkg/env"

    e := env.New("/opt/tools")

    // Put installed programs and libraries on the search paths
    fmt.Print(e.GetActivationScript())

    // Find a specific library
    ssl := e.FindLibrary("ssl")
    if ssl != nil {
        fmt.Printf("Found %s at %s\n", ssl.Name, ssl.Path)
    }

    // Get compiler flags
    flags := e.GetCompilerFlags()
    for _, flag := range flags.IncludeFlags {
        fmt.Println(flag) // -I/opt/tools/include
    }

Every getter inspects the install tree at call time and only reports
directories that exist, so the output stays in step with what install
and remove have actually left on disk.
*/
