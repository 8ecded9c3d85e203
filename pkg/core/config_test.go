// pkg/core/config_test.go
package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().InstallDir, cfg.InstallDir)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	require.NoError(t, SaveConfig(&Config{InstallDir: "/opt/tools"}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "install_dir: /opt/tools\n", string(data))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/tools", cfg.InstallDir)
}

func TestLoadConfigIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := "color: always\ninstall_dir: /opt/x\nverbosity: high\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/x", cfg.InstallDir)
}

func TestLoadConfigEmptyInstallDirFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("install_dir: \"\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().InstallDir, cfg.InstallDir)
}

func TestLoadConfigExpandsTilde(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("install_dir: ~/tools\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "tools"), cfg.InstallDir)
}

func TestSaveConfigCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "instar", ConfigFileName)

	require.NoError(t, SaveConfig(DefaultConfig(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
