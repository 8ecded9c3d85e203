// internal/cli/env.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/instar-dev/instar/pkg/env"
)

var (
	envFlags bool
	envFind  string
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print shell exports for the install directory",
	Long: `Print export statements that put the install directory's bin, lib,
include and share trees on the relevant search paths. Only directories
that exist are exported, so a fresh install directory prints nothing.

Examples:
  eval "$(instar env)"
  gcc hello.c $(instar env --flags)
  instar env --find ssl`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func init() {
	envCmd.Flags().BoolVar(&envFlags, "flags", false, "print compiler and linker flags instead")
	envCmd.Flags().StringVar(&envFind, "find", "", "print the path of the named library and exit")
}

func runEnv(cmd *cobra.Command, args []string) error {
	e := env.New(config.InstallDir)

	if envFind != "" {
		lib := e.FindLibrary(envFind)
		if lib == nil {
			return fmt.Errorf("library not found: %s", envFind)
		}
		fmt.Println(lib.Path)
		return nil
	}

	if envFlags {
		flags := e.GetCompilerFlags()
		all := append(flags.IncludeFlags, flags.LibraryFlags...)
		if len(all) > 0 {
			fmt.Println(strings.Join(all, " "))
		}
		return nil
	}

	fmt.Print(e.GetActivationScript())
	return nil
}
