// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("instar version 0.1.0")
		fmt.Println("Minimal local package manager")
		fmt.Println("https://github.com/instar-dev/instar")
	},
}
