// internal/cli/prefix.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/getargv/pkg/backend"
	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/env"
	"github.com/arc-language/getargv/pkg/platform"
)

var prefixList bool

var prefixCmd = &cobra.Command{
	Use:   "prefix [path] [package]",
	Short: "Resolve a path under the package-manager prefix",
	Long: `Map a path relative to the install prefix onto the prefix of the
highest priority package manager present: MacPorts, then Homebrew, then
$PREFIX or /.

Examples:
  getargv-config prefix lib getargv
  getargv-config prefix bin/llvm-config llvm --goarch=arm64
  getargv-config prefix --list`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runPrefix,
}

func init() {
	prefixCmd.Flags().BoolVar(&prefixList, "list", false, "list the package managers found on this host")
}

func runPrefix(cmd *cobra.Command, args []string) error {
	e := environment()
	out := cmd.OutOrStdout()
	bcfg := &backend.Config{FS: core.HostFS{}, Env: e, Logger: logger}

	if prefixList || len(args) == 0 {
		selected := backend.Select(bcfg).Name()
		fmt.Fprintf(out, "Package managers:\n")
		for _, b := range backend.Chain(bcfg) {
			if !b.Available() {
				continue
			}
			marker := " "
			if b.Name() == selected {
				marker = "*"
			}
			fmt.Fprintf(out, "  %s %s\n", marker, b.Name())
		}
		fmt.Fprintf(out, "\n* = used for resolution\n")
		return nil
	}

	arch, err := platform.ParseArch(env.Get(e, env.TargetArch))
	if err != nil {
		return err
	}
	bcfg.Arch = arch

	rel, pkg := args[0], ""
	if len(args) == 2 {
		pkg = args[1]
	}
	res, err := backend.ResolvePrefix(bcfg, rel, pkg)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Path)
	logger.Debug("resolved", "backend", res.Backend, "path", res.Path)
	return nil
}
