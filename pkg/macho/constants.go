package macho

import "debug/macho"

// Fat container magics, always stored big-endian
const (
	fatMagic   uint32 = 0xcafebabe
	fatMagic64 uint32 = 0xcafebabf
)

// Load commands carrying a minimum OS version
const (
	// LoadCmdVersionMinMacOSX is LC_VERSION_MIN_MACOSX: cmd, cmdsize, version, sdk
	LoadCmdVersionMinMacOSX macho.LoadCmd = 0x24

	// LoadCmdBuildVersion is LC_BUILD_VERSION: cmd, cmdsize, platform, minos, sdk, ntools
	LoadCmdBuildVersion macho.LoadCmd = 0x32
)

// archiveMagic starts every ar(1) static archive
const archiveMagic = "!<arch>\n"

// xzMagic starts every .xz stream
var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
