// pkg/backend/resolver.go
package backend

import (
	"fmt"
)

// Chain returns the backends in priority order: MacPorts, Homebrew, fallback
func Chain(config *Config) []Backend {
	return []Backend{
		NewMacPortsBackend(config),
		NewBrewBackend(config),
		NewFallbackBackend(config),
	}
}

// Available lists the names of backends whose markers exist, in priority order
func Available(config *Config) []BackendType {
	var names []BackendType
	for _, b := range Chain(config) {
		if b.Available() {
			names = append(names, b.Name())
		}
	}
	return names
}

// Select returns the first available backend. Later backends are never
// consulted once an earlier one is installed, even if the path it
// produces turns out not to exist.
func Select(config *Config) Backend {
	chain := Chain(config)
	for _, b := range chain {
		if b.Available() {
			return b
		}
	}
	return chain[len(chain)-1]
}

// ResolvePrefix maps rel onto the install prefix of the highest priority
// package manager present on the host
func ResolvePrefix(config *Config, rel, pkg string) (Resolution, error) {
	b := Select(config)

	path, err := b.Resolve(rel, pkg)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolving %s with %s: %w", rel, b.Name(), err)
	}

	config.logger().Debug("resolved prefix",
		"backend", b.Name(),
		"rel", rel,
		"package", pkg,
		"path", path)

	return Resolution{Backend: b.Name(), Path: path}, nil
}
