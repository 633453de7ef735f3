// constants.go
package macports

const (
	// DefaultPrefix is where MacPorts installs everything
	DefaultPrefix = "/opt/local"

	// Marker is the port executable; its presence means MacPorts is installed
	Marker = "/opt/local/bin/port"
)
