// pkg/install/mapper.go
package install

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/instar-dev/instar/pkg/core"
)

// Mapper translates archive entry paths to destinations under the
// install root. Entries whose first component, after an optional
// package-name prefix, is not one of the category roots are not
// installable and map to nothing.
type Mapper struct {
	root string
	pkg  string
}

// NewMapper returns a Mapper for one package. The install directory
// is resolved to an absolute path once, up front.
func NewMapper(installDir, pkg string) (*Mapper, error) {
	root, err := filepath.Abs(installDir)
	if err != nil {
		return nil, fmt.Errorf("resolving install dir %s: %w", installDir, err)
	}
	return &Mapper{root: root, pkg: pkg}, nil
}

// Root returns the absolute install root.
func (m *Mapper) Root() string { return m.root }

// Map returns the destination for an archive entry path. ok is false
// when the entry carries no installable content: paths outside the
// category roots, the package's own top-level directory, and anything
// that would resolve outside the install root.
func (m *Mapper) Map(entryPath string) (string, bool) {
	rel := path.Clean(entryPath)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || rel == "." {
		return "", false
	}

	parts := strings.Split(rel, "/")
	if parts[0] == m.pkg {
		parts = parts[1:]
	}
	if len(parts) == 0 || !core.IsCategory(parts[0]) {
		return "", false
	}

	dest := filepath.Join(m.root, filepath.Join(parts...))
	if !strings.HasPrefix(dest, m.root+string(filepath.Separator)) {
		return "", false
	}
	return dest, true
}
