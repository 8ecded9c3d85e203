// internal/cli/config.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	instar "github.com/instar-dev/instar"
)

var configCmd = &cobra.Command{
	Use:   "config [name value]",
	Short: "Show or change the configuration",
	Long: `Show the configuration, or set one of its values.

With no arguments the current configuration is printed. With a name
and a value the setting is changed and written back to the config
file. The only setting is install_dir.

Examples:
  instar config
  instar config install_dir /opt/tools`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		fmt.Printf("config file: %s\n", paths.ConfigFile)
		fmt.Printf("install_dir: %s\n", config.InstallDir)
		return nil

	case 2:
		name, value := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
		if name != "install_dir" {
			return fmt.Errorf("unknown config: %s", name)
		}
		config.InstallDir = value
		if err := instar.SaveConfig(config, paths.ConfigFile); err != nil {
			return err
		}
		fmt.Printf("install_dir set to %s\n", value)
		return nil

	default:
		return fmt.Errorf("config takes either no arguments or a name and a value")
	}
}
