// pkg/core/package.go
package core

// Library describes the native shared library the build links against
type Library struct {
	Name    string // Link name (e.g., "getargv" for -lgetargv)
	Package string // Package-manager package name, used for opt/<package> layouts
	Header  string // Interface description consumed by the binding generator
	DirEnv  string // Environment variable overriding the library directory
}

// FileName returns the on-disk name of the shared library
func (l Library) FileName() string {
	return "lib" + l.Name + ".dylib"
}
