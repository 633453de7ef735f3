// manager.go
package macports

import (
	"path/filepath"

	"github.com/arc-language/getargv/pkg/core"
)

// Installed reports whether the port executable exists
func Installed(fsys core.FileSystem) bool {
	return fsys.Exists(Marker)
}

// Resolve returns <prefix>/<rel>. MacPorts has a single prefix for every
// port and architecture.
func Resolve(rel string) string {
	return filepath.Join(DefaultPrefix, rel)
}
