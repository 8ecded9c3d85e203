// internal/cli/remove.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	instar "github.com/instar-dev/instar"
)

var removeCmd = &cobra.Command{
	Use:     "remove [package...]",
	Aliases: []string{"uninstall"},
	Short:   "Remove installed packages",
	Long: `Remove installed packages.

Every file recorded at install time is deleted, and directories the
deletions empty out are pruned up to the bin, etc, include, lib and
share roots.

Examples:
  instar remove hello-1.0
  instar remove hello-1.0 jq-1.7`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	mgr, err := newManager()
	if err != nil {
		return err
	}

	failed := 0
	for _, name := range args {
		res, err := mgr.Remove(ctx, name)
		if err != nil {
			if errors.Is(err, instar.ErrNotInstalled) {
				fmt.Fprintf(os.Stderr, "Package %s is not installed.\n", name)
			} else {
				fmt.Fprintf(os.Stderr, "%s Failed to remove %s: %v\n", color.RedString("✗"), name, err)
			}
			failed++
			continue
		}

		fmt.Printf("%s Removed %s: %d files deleted, %d empty directories pruned\n",
			color.GreenString("✓"), name, res.Files+res.Symlinks, res.Dirs)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d packages failed", failed, len(args))
	}
	return nil
}
