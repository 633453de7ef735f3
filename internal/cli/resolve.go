// internal/cli/resolve.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/getargv/pkg/buildcfg"
	"github.com/arc-language/getargv/pkg/env"
)

var (
	resolveFacts    string
	resolveCgoFile  string
	resolvePackage  string
	resolveGenerate bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve libgetargv and publish its build configuration",
	Long: `Locate libgetargv.dylib, derive the deployment target and PID_MAX,
and publish them as directives on stdout, a facts file and a cgo file.

Examples:
  GOOS=darwin GOARCH=arm64 getargv-config resolve
  getargv-config resolve --goos=darwin --goarch=amd64 --generate
  LIBGETARGV_LIB_DIR=/opt/getargv/lib getargv-config resolve --cgo-file=""
  GETARGV_DOCS=1 getargv-config resolve --generate`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveFacts, "facts", "", "facts file to write, empty to skip (default from config)")
	resolveCmd.Flags().StringVar(&resolveCgoFile, "cgo-file", "", "cgo Go file to write, empty to skip (default from config)")
	resolveCmd.Flags().StringVar(&resolvePackage, "package", "", "package name for the cgo file (default $GOPACKAGE or from config)")
	resolveCmd.Flags().BoolVar(&resolveGenerate, "generate", false, "run the binding generator after resolving")
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	e := environment()

	factsPath := config.FactsFile
	if cmd.Flags().Changed("facts") {
		factsPath = resolveFacts
	}
	cgoPath := config.CgoFile
	if cmd.Flags().Changed("cgo-file") {
		cgoPath = resolveCgoFile
	}
	pkg := resolvePackage
	if pkg == "" {
		pkg = env.Get(e, env.GoPackage)
	}
	if pkg == "" {
		pkg = config.CgoPackage
	}
	config.CgoPackage = pkg

	r, err := newResolver(e)
	if err != nil {
		return err
	}
	res, err := r.Resolve(ctx)
	if err != nil {
		return err
	}

	if err := buildcfg.Publish(cmd.OutOrStdout(), res.Output); err != nil {
		return fmt.Errorf("publishing build configuration: %w", err)
	}

	if factsPath != "" {
		facts, err := r.Fingerprint(res)
		if err != nil {
			return err
		}
		if err := buildcfg.WriteFactsFile(factsPath, facts); err != nil {
			return err
		}
		logger.Debug("wrote facts", "path", factsPath)
	}

	if cgoPath != "" && !res.Output.Docs {
		if err := buildcfg.WriteCgoFile(cgoPath, pkg, res.Output); err != nil {
			return err
		}
		logger.Debug("wrote cgo file", "path", cgoPath, "package", pkg)
	}

	if resolveGenerate {
		if err := r.Generate(ctx, res, cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	return nil
}
