// Package version implements the three-component version numbers found
// in Mach-O minimum-OS load commands and deployment-target settings.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arc-language/getargv/pkg/core"
)

// Version is a MAJOR.MINOR.PATCH triple. The zero value is 0.0.0.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// New builds a Version from its components
func New(major, minor, patch uint32) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse reads a dotted decimal version such as "12", "12.6" or "12.6.1".
// Missing trailing components default to 0 and components past the third
// are ignored.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("%w: empty version", core.ErrInvalidVersionSyntax)
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}

	var fields [3]uint32
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: component %q is not a number", core.ErrInvalidVersionSyntax, s, p)
		}
		fields[i] = uint32(n)
	}

	return Version{Major: fields[0], Minor: fields[1], Patch: fields[2]}, nil
}

// MustParse is like Parse but panics on error. Use only for constants/tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromPacked decodes the xxxx.yy.zz nibble encoding used by Mach-O:
// bits 31-16 major, 15-8 minor, 7-0 patch.
func FromPacked(packed uint32) Version {
	return Version{
		Major: packed >> 16,
		Minor: (packed >> 8) & 0xff,
		Patch: packed & 0xff,
	}
}

// Packed encodes v in the Mach-O layout. Minor and patch are truncated to
// 8 bits and major to 16.
func (v Version) Packed() uint32 {
	return (v.Major&0xffff)<<16 | (v.Minor&0xff)<<8 | v.Patch&0xff
}

// String returns "MAJOR.MINOR.PATCH"
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal
// to, or after other. Major is most significant.
func (v Version) Compare(other Version) int {
	if c := compareUint(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareUint(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareUint(v.Patch, other.Patch)
}

// Compare is the function form of Version.Compare, usable with slices.SortFunc
func Compare(a, b Version) int {
	return a.Compare(b)
}

// Less reports whether v sorts before other
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// AtLeast reports whether v >= other
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}

// MarshalText implements encoding.TextMarshaler
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func compareUint(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
