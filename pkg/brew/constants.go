// constants.go
package brew

const (
	// DefaultInstallPathIntel is the default Homebrew install path for Intel Macs
	DefaultInstallPathIntel = "/usr/local"

	// DefaultInstallPathARM is the default Homebrew install path for ARM Macs
	DefaultInstallPathARM = "/opt/homebrew"

	// OptDir holds per-formula links for keg-only formulae
	OptDir = "opt"
)

// Markers are the locations of the brew executable; either one means
// Homebrew is installed
var Markers = []string{
	"/opt/homebrew/bin/brew",
	"/usr/local/bin/brew",
}
