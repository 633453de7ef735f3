// pkg/backend/brew.go
package backend

import (
	"github.com/arc-language/getargv/pkg/brew"
)

// BrewBackend resolves paths in the Homebrew prefix for the target arch
type BrewBackend struct {
	config *Config
}

// NewBrewBackend creates a new Homebrew backend
func NewBrewBackend(config *Config) *BrewBackend {
	return &BrewBackend{config: config}
}

// Name returns the backend name
func (b *BrewBackend) Name() BackendType {
	return BackendBrew
}

// Available reports whether brew is installed in either default prefix
func (b *BrewBackend) Available() bool {
	return brew.Installed(b.config.FS)
}

// Resolve prefers the linked location and falls back to opt/<pkg>
func (b *BrewBackend) Resolve(rel, pkg string) (string, error) {
	return brew.Resolve(b.config.FS, b.config.Arch, rel, pkg)
}
