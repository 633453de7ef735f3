// pkg/env/types.go
package env

import (
	"os"
	"sort"
	"strings"

	"github.com/arc-language/getargv/pkg/core"
)

var (
	_ core.Environment = Process{}
	_ core.Environment = Map(nil)
)

// Process is the real process environment
type Process struct{}

func (Process) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (Process) Set(key, value string) error {
	return os.Setenv(key, value)
}

func (Process) Environ() []string {
	return os.Environ()
}

// Map is an in-memory environment, used by tests and dry runs
type Map map[string]string

// NewMap builds a Map from alternating key, value arguments
func NewMap(pairs ...string) Map {
	m := make(Map, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m
}

// FromEnviron builds a Map from key=value pairs as returned by os.Environ
func FromEnviron(environ []string) Map {
	m := make(Map, len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		if key != "" {
			m[key] = value
		}
	}
	return m
}

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Map) Set(key, value string) error {
	m[key] = value
	return nil
}

// Environ returns the pairs sorted by key
func (m Map) Environ() []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
