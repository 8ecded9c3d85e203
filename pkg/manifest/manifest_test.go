// pkg/manifest/manifest_test.go
package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instar-dev/instar/pkg/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "packages"))
	require.NoError(t, s.Ensure())
	return s
}

func TestEnsureCreatesDirectory(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "config", "packages"))
	require.NoError(t, s.Ensure())

	info, err := os.Stat(s.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent
	assert.NoError(t, s.Ensure())
}

func TestEnsureFailsUnderFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config"), nil, 0644))

	s := NewStore(filepath.Join(dir, "config", "packages"))
	assert.ErrorIs(t, s.Ensure(), core.ErrManifestDirCreate)
}

func TestCreateAppendRead(t *testing.T) {
	s := newTestStore(t)

	m, err := s.Create("hello-1.0")
	require.NoError(t, err)
	require.NoError(t, m.Append("/usr/local/bin/hello"))
	require.NoError(t, m.Append("/usr/local/share/man/man1/hello.1"))
	require.NoError(t, m.Close())

	paths, err := s.Read("hello-1.0")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/usr/local/bin/hello",
		"/usr/local/share/man/man1/hello.1",
	}, paths)

	assert.True(t, s.Exists("hello-1.0"))
}

func TestCreateTwice(t *testing.T) {
	s := newTestStore(t)

	m, err := s.Create("hello-1.0")
	require.NoError(t, err)
	require.NoError(t, m.Close())

	_, err = s.Create("hello-1.0")
	assert.ErrorIs(t, err, core.ErrAlreadyInstalled)
}

func TestReadMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Read("ghost-0.1")
	assert.ErrorIs(t, err, core.ErrNotInstalled)
	assert.False(t, s.Exists("ghost-0.1"))
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	m, err := s.Create("hello-1.0")
	require.NoError(t, err)
	require.NoError(t, m.Close())

	require.NoError(t, s.Remove("hello-1.0"))
	assert.False(t, s.Exists("hello-1.0"))

	assert.ErrorIs(t, s.Remove("hello-1.0"), core.ErrManifestDelete)
}

func TestListSortedWithoutLockFiles(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"zsh-5.9", "hello-1.0", "jq-1.7"} {
		m, err := s.Create(name)
		require.NoError(t, err)
		require.NoError(t, m.Close())
	}
	require.NoError(t, os.WriteFile(s.Path("hello-1.0")+lockSuffix, nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir(), "stray"), 0755))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"hello-1.0", "jq-1.7", "zsh-5.9"}, names)
}

func TestListMissingDirectory(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "packages"))

	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}
