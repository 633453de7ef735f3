// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates an unrecognized architecture, vendor or
	// other required build setting
	ErrConfiguration = errors.New("configuration error")

	// ErrLibraryNotFound indicates the native library is not where it was expected
	ErrLibraryNotFound = errors.New("library not found")

	// ErrMalformedContainer indicates the library is not a usable Mach-O container
	ErrMalformedContainer = errors.New("malformed container")

	// ErrNoVersionRecord indicates no minimum-OS-version load command was present
	ErrNoVersionRecord = fmt.Errorf("%w: no minimum OS version load command", ErrMalformedContainer)

	// ErrArchNotInFatBinary indicates the fat container has no member for the target arch
	ErrArchNotInFatBinary = fmt.Errorf("%w: architecture not in fat binary", ErrMalformedContainer)

	// ErrArchiveMember indicates the selected fat member is a static archive, not a loadable object
	ErrArchiveMember = fmt.Errorf("%w: fat member is a static archive", ErrMalformedContainer)

	// ErrInvalidVersionSyntax indicates a version string could not be parsed
	ErrInvalidVersionSyntax = errors.New("invalid version syntax")
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // File or directory involved, if any
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
