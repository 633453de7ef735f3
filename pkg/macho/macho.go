// Package macho extracts the minimum OS version a Mach-O library was
// built for. It understands thin images and fat containers, and only the
// two load commands that carry a minimum OS version.
package macho

import (
	"bytes"
	"debug/macho"
	"fmt"

	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/platform"
	"github.com/arc-language/getargv/pkg/version"
)

// CpuFor maps a target architecture onto its Mach-O CPU type
func CpuFor(arch platform.Arch) (macho.Cpu, error) {
	switch arch {
	case platform.X86_64:
		return macho.CpuAmd64, nil
	case platform.Arm64:
		return macho.CpuArm64, nil
	default:
		return 0, fmt.Errorf("%w: unknown arch %q", core.ErrConfiguration, arch)
	}
}

// FindMinimumOSVersion reads the library at path and returns the minimum
// OS version recorded for arch. Thin images are read regardless of arch;
// fat containers must hold a loadable member for arch.
func FindMinimumOSVersion(fsys core.FileSystem, path string, arch platform.Arch) (version.Version, error) {
	data, err := ReadImage(fsys, path)
	if err != nil {
		return version.Version{}, err
	}

	v, err := MinimumOSVersion(data, arch)
	if err != nil {
		return version.Version{}, &core.Error{Op: "reading minimum OS version", Path: path, Err: err}
	}
	return v, nil
}

// MinimumOSVersion is FindMinimumOSVersion over an in-memory image
func MinimumOSVersion(data []byte, arch platform.Arch) (version.Version, error) {
	if !isFat(data) {
		return thinMinimumOSVersion(data)
	}

	cpu, err := CpuFor(arch)
	if err != nil {
		return version.Version{}, err
	}
	members, err := parseFat(data)
	if err != nil {
		return version.Version{}, err
	}
	for _, m := range members {
		if m.Cpu != cpu {
			continue
		}
		slice := m.slice(data)
		if isArchive(slice) {
			return version.Version{}, fmt.Errorf("%w: %s member", core.ErrArchiveMember, cpu)
		}
		return thinMinimumOSVersion(slice)
	}
	return version.Version{}, fmt.Errorf("%w: no %s slice", core.ErrArchNotInFatBinary, arch)
}

func thinMinimumOSVersion(data []byte) (version.Version, error) {
	f, err := macho.NewFile(bytes.NewReader(data))
	if err != nil {
		return version.Version{}, fmt.Errorf("%w: %v", core.ErrMalformedContainer, err)
	}
	defer f.Close()

	packed, ok, err := scanLoads(f)
	if err != nil {
		return version.Version{}, err
	}
	if !ok {
		return version.Version{}, core.ErrNoVersionRecord
	}
	return version.FromPacked(packed), nil
}

// scanLoads returns the packed version from the first recognized load command
func scanLoads(f *macho.File) (uint32, bool, error) {
	for _, l := range f.Loads {
		raw := l.Raw()
		if len(raw) < 8 {
			continue
		}
		switch macho.LoadCmd(f.ByteOrder.Uint32(raw[0:4])) {
		case LoadCmdVersionMinMacOSX:
			if len(raw) < 12 {
				return 0, false, fmt.Errorf("%w: truncated LC_VERSION_MIN_MACOSX", core.ErrMalformedContainer)
			}
			return f.ByteOrder.Uint32(raw[8:12]), true, nil
		case LoadCmdBuildVersion:
			if len(raw) < 16 {
				return 0, false, fmt.Errorf("%w: truncated LC_BUILD_VERSION", core.ErrMalformedContainer)
			}
			return f.ByteOrder.Uint32(raw[12:16]), true, nil
		}
	}
	return 0, false, nil
}
