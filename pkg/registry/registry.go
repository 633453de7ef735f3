// pkg/registry/registry.go
package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arc-language/getargv/pkg/core"
)

//go:embed deps
var builtin embed.FS

// Entry represents a single deps/<name>/index.toml file
type Entry struct {
	Name     string            `toml:"name"`
	Libs     []string          `toml:"libs"`
	Header   string            `toml:"header"`
	DirEnv   string            `toml:"dir_env"`
	Backends map[string]string `toml:"backends"`
	Tools    map[string]Tool   `toml:"tools"`
}

// Tool is a helper executable the binding generator needs, located the
// same way as the library
type Tool struct {
	Path    string `toml:"path"`    // relative to the install prefix
	Package string `toml:"package"` // package providing it
	Env     string `toml:"env"`     // variable that overrides and receives the path
}

// Library returns the descriptor for the entry's primary library.
// backend selects the package name used for per-package layouts.
func (e *Entry) Library(backend string) core.Library {
	lib := core.Library{
		Name:    e.Name,
		Package: e.Name,
		Header:  e.Header,
		DirEnv:  e.DirEnv,
	}
	if len(e.Libs) > 0 {
		lib.Name = e.Libs[0]
	}
	if pkg, ok := e.Backends[backend]; ok && pkg != "" {
		lib.Package = pkg
	}
	return lib
}

// Registry provides lookup into a deps/ folder, falling back to the
// entries compiled into the binary
type Registry struct {
	depsDir string
}

// New creates a Registry. An empty dir uses only the built-in entries.
func New(dir string) *Registry {
	return &Registry{depsDir: dir}
}

// Load reads and parses deps/<name>/index.toml.
// This is the primary method for retrieving library metadata.
func (r *Registry) Load(name string) (*Entry, error) {
	if name == "" {
		return nil, fmt.Errorf("registry: library name is required")
	}

	data, err := r.read(name)
	if err != nil {
		return nil, err
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}
	if entry.Name == "" {
		entry.Name = name
	}
	if entry.DirEnv == "" {
		return nil, fmt.Errorf("registry: '%s' does not name a dir_env override variable", name)
	}

	return &entry, nil
}

func (r *Registry) read(name string) ([]byte, error) {
	if r.depsDir != "" {
		path := filepath.Join(r.depsDir, name, "index.toml")
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("registry: reading '%s': %w", path, err)
		}
	}

	data, err := builtin.ReadFile("deps/" + name + "/index.toml")
	if err != nil {
		return nil, fmt.Errorf("registry: library '%s' not found", name)
	}
	return data, nil
}
