// internal/cli/info.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [package]",
	Short: "Show what a package installed",
	Long:  `Display the files the named package installed, in install order.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	name := args[0]

	mgr, err := newManager()
	if err != nil {
		return err
	}

	files, err := mgr.Files(name)
	if err != nil {
		return err
	}

	fmt.Printf("Package: %s\n", name)
	fmt.Printf("Install directory: %s\n", mgr.InstallDir())
	fmt.Printf("Files: %d\n", len(files))
	for _, f := range files {
		fmt.Printf("  %s\n", f)
	}

	return nil
}
