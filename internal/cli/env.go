// internal/cli/env.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/getargv/pkg/env"
)

var envAll bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables the resolver reads",
	Long: `Print each variable the resolver reads or writes with its current
value. With --all every variable is logged as a warning, as
GETARGV_DEBUG_ENV does during resolve.`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func init() {
	envCmd.Flags().BoolVar(&envAll, "all", false, "log the whole environment")
}

func runEnv(cmd *cobra.Command, args []string) error {
	e := environment()
	if envAll {
		env.Dump(e, logger)
		return nil
	}

	keys := []string{env.TargetOS, env.TargetArch, env.GoPackage}
	r, err := newResolver(e)
	if err != nil {
		return err
	}
	keys = append(keys, r.Entry().DirEnv)
	keys = append(keys, env.DeploymentTarget, env.Docs, env.DebugEnv, env.Prefix, env.ExtraClangArgs)
	keys = append(keys, env.LLVMConfigPath)

	out := cmd.OutOrStdout()
	for _, key := range keys {
		if v, ok := e.Lookup(key); ok {
			fmt.Fprintf(out, "%s=%q\n", key, v)
		} else {
			fmt.Fprintf(out, "%s (unset)\n", key)
		}
	}
	return nil
}
