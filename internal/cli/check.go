// internal/cli/check.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/getargv/pkg/buildcfg"
	"github.com/arc-language/getargv/pkg/core"
)

var checkFacts string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether the recorded build facts are still current",
	Long: `Compare the facts file written by resolve against the current
environment, header and library. Exits non-zero when any trigger changed,
so a build step can rerun resolve only when needed.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFacts, "facts", "", "facts file to check (default from config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := checkFacts
	if path == "" {
		path = config.FactsFile
	}

	facts, err := buildcfg.ReadFactsFile(path)
	if err != nil {
		return err
	}
	stale, err := buildcfg.Stale(core.HostFS{}, environment(), facts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(stale) == 0 {
		fmt.Fprintf(out, "%s is current (deployment target %s, PID_MAX %d)\n",
			path, facts.Facts.DeploymentTarget, facts.Facts.PidMax)
		return nil
	}
	for _, trigger := range stale {
		fmt.Fprintf(out, "changed: %s\n", trigger)
	}
	return fmt.Errorf("%s is stale: %s", path, strings.Join(stale, ", "))
}
