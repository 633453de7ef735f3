package getargv

import (
	"github.com/arc-language/getargv/pkg/core"
)

// Re-export error kinds so callers only need the root package
var (
	// ErrConfiguration indicates an unrecognized target or a non-Apple target
	ErrConfiguration = core.ErrConfiguration

	// ErrLibraryNotFound indicates libgetargv.dylib is not where it was expected
	ErrLibraryNotFound = core.ErrLibraryNotFound

	// ErrMalformedContainer indicates the library is not a usable Mach-O container
	ErrMalformedContainer = core.ErrMalformedContainer

	// ErrNoVersionRecord indicates the library carries no minimum OS version
	ErrNoVersionRecord = core.ErrNoVersionRecord

	// ErrArchNotInFatBinary indicates the fat library lacks the target arch
	ErrArchNotInFatBinary = core.ErrArchNotInFatBinary

	// ErrArchiveMember indicates the target arch's member is a static archive
	ErrArchiveMember = core.ErrArchiveMember

	// ErrInvalidVersionSyntax indicates MACOSX_DEPLOYMENT_TARGET could not be parsed
	ErrInvalidVersionSyntax = core.ErrInvalidVersionSyntax
)

// Error wraps an error with the operation and path involved
type Error = core.Error
