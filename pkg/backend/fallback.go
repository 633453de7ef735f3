// pkg/backend/fallback.go
package backend

import (
	"path/filepath"

	"github.com/arc-language/getargv/pkg/env"
)

// FallbackBackend resolves paths under $PREFIX, or / when unset
type FallbackBackend struct {
	config *Config
}

// NewFallbackBackend creates the last-resort backend
func NewFallbackBackend(config *Config) *FallbackBackend {
	return &FallbackBackend{config: config}
}

// Name returns the backend name
func (b *FallbackBackend) Name() BackendType {
	return BackendFallback
}

// Available is always true
func (b *FallbackBackend) Available() bool {
	return true
}

// Resolve joins rel onto the prefix
func (b *FallbackBackend) Resolve(rel, pkg string) (string, error) {
	prefix, ok := b.config.Env.Lookup(env.Prefix)
	if !ok || prefix == "" {
		prefix = "/"
	}
	return filepath.Join(prefix, rel), nil
}
