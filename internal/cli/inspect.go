// internal/cli/inspect.go
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/getargv/pkg/backend"
	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/macho"
	"github.com/arc-language/getargv/pkg/platform"
)

var inspectYAML bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [library]",
	Short: "Show the architectures and minimum OS versions of a library",
	Long: `List every architecture in a Mach-O library with the minimum macOS
version it records. Without an argument the library is located the same
way resolve does, which needs GOOS and GOARCH.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectYAML, "yaml", false, "print as YAML")
}

func runInspect(cmd *cobra.Command, args []string) error {
	fsys := core.HostFS{}

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		located, err := locateLibrary()
		if err != nil {
			return err
		}
		path = located
	}

	slices, err := macho.Inspect(fsys, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if inspectYAML {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(map[string]any{"path": path, "slices": slices})
	}

	fmt.Fprintf(out, "Library: %s\n", path)
	for _, s := range slices {
		switch {
		case s.Archive:
			fmt.Fprintf(out, "  %-8s static archive\n", s.Cpu)
		case s.MinOS != nil:
			fmt.Fprintf(out, "  %-8s %-8s min macOS %s\n", s.Cpu, s.Type, s.MinOS)
		default:
			fmt.Fprintf(out, "  %-8s %-8s no minimum OS version\n", s.Cpu, s.Type)
		}
	}
	return nil
}

// locateLibrary finds the library the way resolve does, without reading it
func locateLibrary() (string, error) {
	e := environment()
	r, err := newResolver(e)
	if err != nil {
		return "", err
	}
	lib := r.Entry().Library("")

	if dir, ok := e.Lookup(lib.DirEnv); ok {
		return filepath.Join(dir, lib.FileName()), nil
	}
	plat, err := platform.Detect(e)
	if err != nil {
		return "", fmt.Errorf("detecting platform: %w", err)
	}
	bcfg := r.BackendConfig(plat.TargetArch)
	lib = r.Entry().Library(string(backend.Select(bcfg).Name()))
	res, err := backend.ResolvePrefix(bcfg, "lib", lib.Package)
	if err != nil {
		return "", err
	}
	return filepath.Join(res.Path, lib.FileName()), nil
}
