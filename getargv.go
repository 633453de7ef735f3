// Package getargv resolves the build configuration for linking against
// libgetargv: where the library lives, the macOS version it targets and
// the PID_MAX that follows from it.
package getargv

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/arc-language/getargv/pkg/backend"
	"github.com/arc-language/getargv/pkg/bindgen"
	"github.com/arc-language/getargv/pkg/buildcfg"
	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/env"
	"github.com/arc-language/getargv/pkg/platform"
	"github.com/arc-language/getargv/pkg/registry"
)

// Re-export types for convenience
type (
	Config        = core.Config
	Library       = core.Library
	Platform      = platform.Platform
	Resolution    = backend.Resolution
	BuildFacts    = buildcfg.BuildFacts
	Output        = buildcfg.Output
	Request       = bindgen.Request
	RegistryEntry = registry.Entry
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Options configures a Resolver. Zero fields use the real process
// environment, the host filesystem and a discarding logger.
type Options struct {
	Config *Config
	Env    core.Environment
	FS     core.FileSystem
	Logger *slog.Logger
}

// Resolver runs one build-configuration resolution
type Resolver struct {
	config *Config
	env    core.Environment
	fs     core.FileSystem
	logger *slog.Logger
	entry  *registry.Entry
}

// Result is what a resolution produced
type Result struct {
	Platform *Platform

	// Library is the descriptor the resolution was for
	Library Library

	// Resolution is how the library directory was found; empty when the
	// directory came from the override variable or in documentation mode
	Resolution Resolution

	// Output holds the link settings, facts and triggers
	Output Output

	// LLVMConfig is the llvm-config path handed to the generator
	LLVMConfig string

	// Request is the binding generator request
	Request Request
}

// New creates a Resolver, loading the library descriptor from the registry
func New(opts Options) (*Resolver, error) {
	r := &Resolver{
		config: opts.Config,
		env:    opts.Env,
		fs:     opts.FS,
		logger: opts.Logger,
	}
	if r.config == nil {
		r.config = core.DefaultConfig()
	}
	if r.env == nil {
		r.env = env.Process{}
	}
	if r.fs == nil {
		r.fs = core.HostFS{}
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	entry, err := registry.New(r.config.RegistryDir).Load(r.config.Library)
	if err != nil {
		return nil, fmt.Errorf("loading library descriptor: %w", err)
	}
	r.entry = entry
	return r, nil
}

// Entry returns the registry entry for the library being resolved
func (r *Resolver) Entry() *RegistryEntry {
	return r.entry
}

// Docs reports whether documentation mode is on
func (r *Resolver) Docs() bool {
	return env.Enabled(r.env, env.Docs)
}

// BackendConfig returns the backend configuration for arch
func (r *Resolver) BackendConfig(arch platform.Arch) *backend.Config {
	return &backend.Config{FS: r.fs, Env: r.env, Arch: arch, Logger: r.logger}
}

// Resolve locates the library, derives its build facts and prepares the
// binding generator request. In documentation mode the library is not
// probed and only the generator request is filled in.
func (r *Resolver) Resolve(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if env.IsSet(r.env, env.DebugEnv) {
		env.Dump(r.env, r.logger)
	}

	plat, err := platform.Detect(r.env)
	if err != nil {
		return nil, fmt.Errorf("detecting platform: %w", err)
	}
	docs := r.Docs()
	if !docs {
		if err := plat.RequireAppleTarget(); err != nil {
			return nil, err
		}
	}
	r.logger.Debug("detected platform", "platform", plat.String(), "cross", plat.IsCrossCompiling(), "docs", docs)

	bcfg := r.BackendConfig(plat.TargetArch)
	res := &Result{
		Platform: plat,
		Library:  r.entry.Library(string(backend.Select(bcfg).Name())),
	}
	header := res.Library.Header

	res.Output = buildcfg.Output{
		Docs: docs,
		Triggers: buildcfg.Triggers{
			Env:   []string{res.Library.DirEnv, env.DeploymentTarget},
			Files: []string{header},
		},
	}
	if docs {
		res.Output.Triggers.Env = nil
	} else if err := r.resolveLibrary(bcfg, res); err != nil {
		return nil, err
	}

	if tool, ok := r.entry.Tools["llvm-config"]; ok {
		path, err := bindgen.LocateTool(r.env, bcfg, tool)
		if err != nil {
			return nil, err
		}
		res.LLVMConfig = path
	}

	req := bindgen.NewRequest(r.config.CgoPackage, header)
	req.Docs = docs
	req.ClangArgs = bindgen.ExtraClangArgs(r.env)
	if docs {
		req.IncludeDirs = []string{r.config.DocsInclude}
	} else {
		req.LibDir = res.Output.LinkSearch
		req.LinkLib = res.Output.LinkLib
		req.DeploymentTarget = res.Output.Facts.DeploymentTarget.String()
	}
	res.Request = req

	return res, nil
}

func (r *Resolver) resolveLibrary(bcfg *backend.Config, res *Result) error {
	lib := res.Library
	dir, override := r.env.Lookup(lib.DirEnv)
	if !override {
		resolution, err := backend.ResolvePrefix(bcfg, "lib", lib.Package)
		if err != nil {
			return err
		}
		res.Resolution = resolution
		dir = resolution.Path
	}

	path := filepath.Join(dir, lib.FileName())
	if !r.fs.Exists(path) {
		if override {
			return &core.Error{
				Op:   "locating library",
				Path: path,
				Err: fmt.Errorf("%w: couldn't locate %s in %s (from %s), check if version is in file name",
					core.ErrLibraryNotFound, lib.FileName(), dir, lib.DirEnv),
			}
		}
		return &core.Error{
			Op:   "locating library",
			Path: path,
			Err: fmt.Errorf("%w: couldn't locate %s, try setting the %s env var to the path to the directory in which %s is located",
				core.ErrLibraryNotFound, lib.FileName(), lib.DirEnv, lib.FileName()),
		}
	}

	canonical, err := r.fs.Canonical(dir)
	if err != nil {
		return &core.Error{Op: "canonicalizing library directory", Path: dir, Err: err}
	}

	facts, err := buildcfg.ResolveBuildFacts(r.env, r.fs, path, res.Platform.TargetArch)
	if err != nil {
		return err
	}
	r.logger.Info("resolved libgetargv",
		"path", path,
		"deployment_target", facts.DeploymentTarget.String(),
		"pid_max", facts.PidMax,
		"source", facts.Source)

	res.Output.LinkSearch = canonical
	res.Output.LinkLib = lib.Name
	res.Output.Library = path
	res.Output.Facts = facts
	return nil
}

// Generate runs the binding generator for a resolved result
func (r *Resolver) Generate(ctx context.Context, res *Result, stdout io.Writer) error {
	return bindgen.Run(ctx, bindgen.Options{
		Generator:      r.config.Generator,
		Env:            r.env,
		CrossCompiling: res.Platform.IsCrossCompiling(),
		Stdout:         stdout,
		Logger:         r.logger,
	}, res.Request)
}

// Fingerprint records the state of res's triggers for staleness checks
func (r *Resolver) Fingerprint(res *Result) (*buildcfg.Facts, error) {
	return buildcfg.Fingerprint(r.fs, r.env, res.Output)
}
