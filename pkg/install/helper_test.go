// pkg/install/helper_test.go
package install

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/instar-dev/instar/pkg/manifest"
)

type tarEntry struct {
	name     string
	typeflag byte
	mode     int64
	content  string
	linkname string
}

func dirEntry(name string) tarEntry {
	return tarEntry{name: name, typeflag: tar.TypeDir, mode: 0755}
}

func fileEntry(name, content string) tarEntry {
	return tarEntry{name: name, typeflag: tar.TypeReg, mode: 0644, content: content}
}

func linkEntry(name, target string) tarEntry {
	return tarEntry{name: name, typeflag: tar.TypeSymlink, mode: 0777, linkname: target}
}

// writeTarGz builds a .tar.gz under dir and returns its path.
func writeTarGz(t *testing.T, dir, base string, entries []tarEntry) string {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for _, e := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     e.name,
			Typeflag: e.typeflag,
			Mode:     e.mode,
			Linkname: e.linkname,
			Size:     int64(len(e.content)),
		}))
		if e.content != "" {
			_, err := tw.Write([]byte(e.content))
			require.NoError(t, err)
		}
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	path := filepath.Join(dir, base)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

// fixture bundles the pieces every transaction test needs.
type fixture struct {
	store     *manifest.Store
	installer *Installer
	remover   *Remover
	root      string
	dir       string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	store := manifest.NewStore(filepath.Join(dir, "packages"))
	return &fixture{
		store:     store,
		installer: NewInstaller(store, nil),
		remover:   NewRemover(store, nil),
		root:      filepath.Join(dir, "local"),
		dir:       dir,
	}
}
