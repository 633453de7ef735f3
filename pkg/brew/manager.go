// manager.go
package brew

import (
	"path/filepath"

	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/platform"
)

// Installed reports whether any brew marker exists
func Installed(fsys core.FileSystem) bool {
	for _, marker := range Markers {
		if fsys.Exists(marker) {
			return true
		}
	}
	return false
}

// Resolve returns <prefix>/<rel> if it exists, otherwise the keg-only
// location <prefix>/opt/<formula>/<rel>. The second path is not checked;
// callers report a still-missing file themselves.
func Resolve(fsys core.FileSystem, arch platform.Arch, rel, formula string) (string, error) {
	prefix, err := Prefix(arch)
	if err != nil {
		return "", err
	}

	linked := filepath.Join(prefix, rel)
	if fsys.Exists(linked) {
		return linked, nil
	}
	return filepath.Join(prefix, OptDir, formula, rel), nil
}
