// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Config holds instar configuration. The on-disk form is the line-oriented
// `key: value` file instar.cfg; install_dir is the only recognized key and
// unknown keys are ignored on load.
type Config struct {
	InstallDir string `yaml:"install_dir"`
}

// DefaultConfig returns a configuration with the default install root
func DefaultConfig() *Config {
	return &Config{
		InstallDir: defaultInstallDir(),
	}
}

// LoadConfig loads configuration from path. A missing file yields the
// default configuration. A leading ~ in install_dir is expanded to the
// user's home directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.InstallDir == "" {
		cfg.InstallDir = defaultInstallDir()
	}
	if expanded, err := homedir.Expand(cfg.InstallDir); err == nil {
		cfg.InstallDir = expanded
	}

	return cfg, nil
}

// SaveConfig saves configuration to path, rewriting the whole file
func SaveConfig(cfg *Config, path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func defaultInstallDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return "/usr/local"
	}
	return filepath.Join(home, ".local")
}
