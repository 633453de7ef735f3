// platform.go
package brew

import (
	"fmt"

	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/platform"
)

// Prefix returns the Homebrew prefix used for bottles built for arch.
// Intel and Apple Silicon installs live in different trees.
func Prefix(arch platform.Arch) (string, error) {
	switch arch {
	case platform.X86_64:
		return DefaultInstallPathIntel, nil
	case platform.Arm64:
		return DefaultInstallPathARM, nil
	default:
		return "", fmt.Errorf("%w: unknown arch %q for Homebrew prefix", core.ErrConfiguration, arch)
	}
}
