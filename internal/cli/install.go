// internal/cli/install.go
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	instar "github.com/instar-dev/instar"
)

var installYes bool

var installCmd = &cobra.Command{
	Use:   "install [archive...]",
	Short: "Install packages from archives",
	Long: `Install one or more package archives into the install directory.

The package name is the archive file name minus its suffix, so
hello-1.0.tar.gz installs as hello-1.0. Only the bin, etc, include,
lib and share trees of the archive are unpacked; everything else is
skipped.

Examples:
  instar install hello-1.0.tar.gz
  instar install --yes build/jq-1.7.tar.gz
  instar install hello-1.0.tar.gz ripgrep-14.1.tar.xz`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "skip the confirmation prompt")
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	mgr, err := newManager()
	if err != nil {
		return err
	}

	failed := 0
	for _, archivePath := range args {
		if _, err := os.Stat(archivePath); err != nil {
			fmt.Fprintf(os.Stderr, "File not found: %s\n", archivePath)
			failed++
			continue
		}

		name, err := instar.PackageName(archivePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("✗"), err)
			failed++
			continue
		}
		fmt.Printf("Package will be installed under the name: %s\n", name)

		if !installYes {
			prompt := fmt.Sprintf("Installing %s to %s. Continue? [Y/N]: ", archivePath, mgr.InstallDir())
			if !confirm(prompt) {
				fmt.Println("No confirmation received. Aborting...")
				continue
			}
		}

		res, err := mgr.Install(ctx, archivePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s Failed to install %s: %v\n", color.RedString("✗"), name, err)
			failed++
			continue
		}

		fmt.Printf("%s Installed %s: %d files, %d symlinks (%d entries skipped)\n",
			color.GreenString("✓"), name, res.Files, res.Symlinks, res.Skipped)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d archives failed", failed, len(args))
	}
	return nil
}

// confirm prints the prompt and reads one line from stdin. Anything
// but y or yes declines.
func confirm(prompt string) bool {
	fmt.Print(prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer != "y" && answer != "yes" {
		return false
	}
	fmt.Println("Confirmation received.")
	return true
}
