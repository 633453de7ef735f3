// Package testutil builds synthetic Mach-O images for tests.
//
// [Thin] produces a 64-bit little-endian dylib header followed by the
// requested load commands. [Fat] packs thin images (or anything else, such
// as [Archive] output) behind a big-endian fat header. The images carry no
// segments or symbols; they are only as complete as the load-command
// scanner needs.
//
// [WriteFile] drops an image at a path under a test's temporary root.
//
// This package has no getargv-internal dependencies.
package testutil
