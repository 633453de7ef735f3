// internal/cli/root.go
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/getargv"
	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/env"
)

var (
	cfgFile     string
	registryDir string
	targetOS    string
	targetArch  string
	debug       bool
	config      *core.Config
	logger      *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "getargv-config",
	Short: "Build configuration for libgetargv",
	Long: `getargv-config - build configuration for libgetargv

Locates libgetargv.dylib through MacPorts, Homebrew or $PREFIX, reads the
minimum macOS version it was built for, and publishes the link flags,
deployment target and PID_MAX the Go bindings are built with.

Meant to be run from go generate, which sets GOOS and GOARCH:

  //go:generate go run github.com/arc-language/getargv/cmd/getargv-config resolve`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/getargv/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&registryDir, "registry", "", "directory of library descriptors overriding the built-in ones")
	rootCmd.PersistentFlags().StringVar(&targetOS, "goos", "", "target OS (default $GOOS)")
	rootCmd.PersistentFlags().StringVar(&targetArch, "goarch", "", "target architecture (default $GOARCH)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(prefixCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if registryDir != "" {
		config.RegistryDir = registryDir
	}
	if debug {
		config.Debug = true
	}

	level := slog.LevelInfo
	if config.Debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// environment is the process environment with the target flags applied
func environment() env.Map {
	e := env.FromEnviron(os.Environ())
	if targetOS != "" {
		e[env.TargetOS] = targetOS
	}
	if targetArch != "" {
		e[env.TargetArch] = targetArch
	}
	return e
}

func newResolver(e core.Environment) (*getargv.Resolver, error) {
	return getargv.New(getargv.Options{
		Config: config,
		Env:    e,
		FS:     core.HostFS{},
		Logger: logger,
	})
}
