// pkg/core/interface.go
package core

import (
	"os"
	"path/filepath"
)

// Environment is the process-wide variable set the resolver reads from.
// Writes are limited to propagating tool paths for downstream collaborators.
type Environment interface {
	// Lookup returns the value of key and whether it is set
	Lookup(key string) (string, bool)

	// Set assigns key for the rest of the run (and any child processes)
	Set(key, value string) error

	// Environ returns every variable as key=value pairs
	Environ() []string
}

// FileSystem is the read-only view of the host used while probing.
// All paths are absolute host paths.
type FileSystem interface {
	// Exists reports whether path names an existing file or directory
	Exists(path string) bool

	// ReadFile reads path in full
	ReadFile(path string) ([]byte, error)

	// Canonical resolves symlinks and returns an absolute path
	Canonical(path string) (string, error)
}

// HostFS reads the real filesystem
type HostFS struct{}

func (HostFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (HostFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (HostFS) Canonical(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// RootedFS maps every absolute path under Root. Paths returned by
// Canonical stay in the unrooted form so callers never see Root.
type RootedFS struct {
	Root string
}

func (r RootedFS) host(path string) string {
	return filepath.Join(r.Root, filepath.FromSlash(path))
}

func (r RootedFS) Exists(path string) bool {
	_, err := os.Stat(r.host(path))
	return err == nil
}

func (r RootedFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(r.host(path))
}

func (r RootedFS) Canonical(path string) (string, error) {
	if _, err := os.Stat(r.host(path)); err != nil {
		return "", err
	}
	return filepath.Clean(path), nil
}
