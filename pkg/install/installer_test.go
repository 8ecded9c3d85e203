// pkg/install/installer_test.go
package install

import (
	"archive/tar"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instar-dev/instar/pkg/core"
)

func TestInstallExtractsAndRecords(t *testing.T) {
	f := newFixture(t)
	path := writeTarGz(t, f.dir, "foo-1.0.tar.gz", []tarEntry{
		dirEntry("foo-1.0/"),
		dirEntry("foo-1.0/bin/"),
		fileEntry("foo-1.0/bin/foo", "#!/bin/sh\necho foo\n"),
		dirEntry("foo-1.0/share/"),
		dirEntry("foo-1.0/share/man/"),
		dirEntry("foo-1.0/share/man/man1/"),
		fileEntry("foo-1.0/share/man/man1/foo.1", ".TH FOO 1\n"),
		fileEntry("foo-1.0/README", "not installed\n"),
	})

	res, err := f.installer.Install(context.Background(), path, "foo-1.0", f.root)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Files)
	assert.Equal(t, 4, res.Dirs)
	assert.Equal(t, 0, res.Symlinks)
	assert.Equal(t, 2, res.Skipped, "top-level dir and README fall outside the roots")

	data, err := os.ReadFile(filepath.Join(f.root, "bin", "foo"))
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho foo\n", string(data))
	assert.FileExists(t, filepath.Join(f.root, "share", "man", "man1", "foo.1"))
	assert.NoFileExists(t, filepath.Join(f.root, "README"))

	paths, err := f.store.Read("foo-1.0")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(f.root, "bin", "foo"),
		filepath.Join(f.root, "share", "man", "man1", "foo.1"),
	}, paths, "manifest holds installed paths in archive order, no directories")
}

func TestInstallWithoutPackagePrefix(t *testing.T) {
	f := newFixture(t)
	path := writeTarGz(t, f.dir, "bare-0.2.tar.gz", []tarEntry{
		fileEntry("bin/bare", "bare\n"),
	})

	res, err := f.installer.Install(context.Background(), path, "bare-0.2", f.root)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
	assert.FileExists(t, filepath.Join(f.root, "bin", "bare"))
}

func TestInstallAlreadyInstalled(t *testing.T) {
	f := newFixture(t)
	path := writeTarGz(t, f.dir, "foo-1.0.tar.gz", []tarEntry{
		fileEntry("foo-1.0/bin/foo", "v1\n"),
	})

	_, err := f.installer.Install(context.Background(), path, "foo-1.0", f.root)
	require.NoError(t, err)

	res, err := f.installer.Install(context.Background(), path, "foo-1.0", f.root)
	assert.ErrorIs(t, err, core.ErrAlreadyInstalled)
	assert.Equal(t, 0, res.Files)
}

func TestInstallCreatesOmittedParents(t *testing.T) {
	f := newFixture(t)
	path := writeTarGz(t, f.dir, "doc-3.1.tar.gz", []tarEntry{
		fileEntry("doc-3.1/share/doc/doc/README.md", "docs\n"),
	})

	res, err := f.installer.Install(context.Background(), path, "doc-3.1", f.root)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Dirs, "no explicit directory entries")
	assert.FileExists(t, filepath.Join(f.root, "share", "doc", "doc", "README.md"))
}

func TestInstallSymlink(t *testing.T) {
	f := newFixture(t)
	path := writeTarGz(t, f.dir, "foo-1.0.tar.gz", []tarEntry{
		fileEntry("foo-1.0/bin/foo", "foo\n"),
		linkEntry("foo-1.0/bin/f", "foo"),
	})

	res, err := f.installer.Install(context.Background(), path, "foo-1.0", f.root)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Symlinks)

	link := filepath.Join(f.root, "bin", "f")
	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "foo", target)

	paths, err := f.store.Read("foo-1.0")
	require.NoError(t, err)
	assert.Contains(t, paths, link)
}

func TestInstallSkipsHardLinks(t *testing.T) {
	f := newFixture(t)
	path := writeTarGz(t, f.dir, "foo-1.0.tar.gz", []tarEntry{
		fileEntry("foo-1.0/bin/foo", "foo\n"),
		{name: "foo-1.0/bin/foo2", typeflag: tar.TypeLink, mode: 0755, linkname: "foo-1.0/bin/foo"},
	})

	res, err := f.installer.Install(context.Background(), path, "foo-1.0", f.root)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
	assert.Equal(t, 1, res.Skipped)
	assert.NoFileExists(t, filepath.Join(f.root, "bin", "foo2"))

	paths, err := f.store.Read("foo-1.0")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(f.root, "bin", "foo")}, paths)
}

func TestInstallPreservesFileMode(t *testing.T) {
	f := newFixture(t)
	path := writeTarGz(t, f.dir, "foo-1.0.tar.gz", []tarEntry{
		{name: "foo-1.0/bin/foo", typeflag: tar.TypeReg, mode: 0755, content: "#!/bin/sh\n"},
	})

	_, err := f.installer.Install(context.Background(), path, "foo-1.0", f.root)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(f.root, "bin", "foo"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestInstallTruncatedArchiveKeepsManifest(t *testing.T) {
	f := newFixture(t)
	path := writeTarGz(t, f.dir, "foo-1.0.tar.gz", []tarEntry{
		fileEntry("foo-1.0/bin/foo", "some content that will be cut off\n"),
	})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)/2], 0644))

	_, err = f.installer.Install(context.Background(), path, "foo-1.0", f.root)
	require.Error(t, err)

	// The manifest survives so remove can clean up the partial install
	assert.True(t, f.store.Exists("foo-1.0"))
}

func TestInstallMissingArchive(t *testing.T) {
	f := newFixture(t)

	_, err := f.installer.Install(context.Background(),
		filepath.Join(f.dir, "absent-1.0.tar.gz"), "absent-1.0", f.root)
	assert.ErrorIs(t, err, core.ErrArchiveOpen)
	assert.False(t, f.store.Exists("absent-1.0"), "no manifest before the archive opens")
}
