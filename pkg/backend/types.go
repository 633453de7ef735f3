// pkg/backend/types.go
package backend

import (
	"io"
	"log/slog"

	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/platform"
)

// BackendType names a package-manager layout
type BackendType string

const (
	// BackendMacPorts uses the MacPorts prefix
	BackendMacPorts BackendType = "macports"
	// BackendBrew uses the Homebrew prefix for the target arch
	BackendBrew BackendType = "brew"
	// BackendFallback uses $PREFIX or the filesystem root
	BackendFallback BackendType = "fallback"
)

// Backend is one package-manager layout the resolver can look in
type Backend interface {
	// Name returns the name of the backend
	Name() BackendType

	// Available reports whether the backend's marker file exists
	Available() bool

	// Resolve maps a path relative to the install prefix onto an absolute
	// path. pkg is the package name, used by layouts with per-package trees.
	Resolve(rel, pkg string) (string, error)
}

// Config holds what every backend needs to probe the host
type Config struct {
	// FS is the filesystem markers and paths are checked against
	FS core.FileSystem

	// Env supplies the fallback prefix
	Env core.Environment

	// Arch is the target architecture, used by arch-dependent layouts
	Arch platform.Arch

	// Logger for debug output
	Logger *slog.Logger
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

// Resolution is the outcome of ResolvePrefix
type Resolution struct {
	Backend BackendType `yaml:"backend" json:"backend"`
	Path    string      `yaml:"path" json:"path"`
}
