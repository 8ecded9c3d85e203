// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	instar "github.com/instar-dev/instar"
)

var (
	configDir string
	debug     bool
	paths     instar.Paths
	config    *instar.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "instar",
	Short: "Minimal local package manager",
	Long: `instar - install tar

A minimal package manager for locally built software. It unpacks the
bin, etc, include, lib and share trees of an archive into one install
directory and records every file it places, so a package can later be
removed without leaving anything behind.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default is $HOME/.config/instar)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if configDir != "" {
		paths = instar.PathsIn(configDir)
	} else {
		p, err := instar.DefaultPaths()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving config directory: %v\n", err)
			os.Exit(1)
		}
		paths = p
	}

	var err error
	config, err = instar.LoadConfig(paths.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = instar.DefaultConfig()
	}
}

// newManager builds a Manager from the loaded config and flags.
func newManager() (*instar.Manager, error) {
	return instar.NewManager(&instar.Options{
		Paths:  &paths,
		Config: config,
		Debug:  debug,
	})
}
