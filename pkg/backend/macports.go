// pkg/backend/macports.go
package backend

import (
	"github.com/arc-language/getargv/pkg/macports"
)

// MacPortsBackend resolves paths in the MacPorts prefix
type MacPortsBackend struct {
	config *Config
}

// NewMacPortsBackend creates a new MacPorts backend
func NewMacPortsBackend(config *Config) *MacPortsBackend {
	return &MacPortsBackend{config: config}
}

// Name returns the backend name
func (b *MacPortsBackend) Name() BackendType {
	return BackendMacPorts
}

// Available reports whether the port executable exists
func (b *MacPortsBackend) Available() bool {
	return macports.Installed(b.config.FS)
}

// Resolve ignores pkg; MacPorts has one prefix
func (b *MacPortsBackend) Resolve(rel, pkg string) (string, error) {
	return macports.Resolve(rel), nil
}
