// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages",
	Long:  `List the installed packages, one name per line.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	names, err := mgr.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("No packages installed.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
