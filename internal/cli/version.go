// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version of getargv-config
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "getargv-config version %s\n", Version)
		fmt.Fprintln(out, "Build configuration for libgetargv")
		fmt.Fprintln(out, "https://github.com/arc-language/getargv")
	},
}
