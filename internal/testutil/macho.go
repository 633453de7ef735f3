package testutil

import (
	"bytes"
	"debug/macho"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

const (
	lcUUID              = 0x1b
	lcVersionMinMacOSX  = 0x24
	lcBuildVersion      = 0x32
	platformMacOS       = 1
	fatMagic            = 0xcafebabe
	fatMagic64          = 0xcafebabf
	fatMemberAlignShift = 4
)

// ThinOptions selects which version records a thin image carries.
// Zero values omit the record.
type ThinOptions struct {
	Cpu          macho.Cpu
	Type         macho.Type
	VersionMin   uint32 // LC_VERSION_MIN_MACOSX version field
	BuildVersion uint32 // LC_BUILD_VERSION minos field
	// BuildFirst places LC_BUILD_VERSION before LC_VERSION_MIN_MACOSX
	BuildFirst bool
}

// Thin returns a 64-bit Mach-O image. An LC_UUID command always comes
// first so scanners have to skip unrelated commands.
func Thin(opts ThinOptions) []byte {
	if opts.Type == 0 {
		opts.Type = macho.TypeDylib
	}

	var cmds [][]byte
	cmds = append(cmds, loadCmd(lcUUID, make([]byte, 16)))

	versionMin := func() {
		if opts.VersionMin != 0 {
			cmds = append(cmds, loadCmd(lcVersionMinMacOSX, u32s(opts.VersionMin, opts.VersionMin)))
		}
	}
	buildVersion := func() {
		if opts.BuildVersion != 0 {
			// platform, minos, sdk, ntools
			cmds = append(cmds, loadCmd(lcBuildVersion, u32s(platformMacOS, opts.BuildVersion, opts.BuildVersion, 0)))
		}
	}
	if opts.BuildFirst {
		buildVersion()
		versionMin()
	} else {
		versionMin()
		buildVersion()
	}

	var sizeofcmds int
	for _, c := range cmds {
		sizeofcmds += len(c)
	}

	var buf bytes.Buffer
	buf.Write(u32s(
		uint32(macho.Magic64),
		uint32(opts.Cpu),
		0, // cpusubtype
		uint32(opts.Type),
		uint32(len(cmds)),
		uint32(sizeofcmds),
		0, // flags
		0, // reserved
	))
	for _, c := range cmds {
		buf.Write(c)
	}
	return buf.Bytes()
}

// FatMember is one entry of a fat container
type FatMember struct {
	Cpu  macho.Cpu
	Data []byte
}

// Fat packs members behind a 32-bit fat header
func Fat(members ...FatMember) []byte {
	return fat(false, members)
}

// Fat64 packs members behind a 64-bit fat header
func Fat64(members ...FatMember) []byte {
	return fat(true, members)
}

func fat(wide bool, members []FatMember) []byte {
	entrySize := 20
	magic := uint32(fatMagic)
	if wide {
		entrySize = 32
		magic = fatMagic64
	}

	offset := align(8 + entrySize*len(members))
	var header, body bytes.Buffer
	header.Write(be32(magic, uint32(len(members))))
	for _, m := range members {
		if wide {
			header.Write(be32(uint32(m.Cpu), 0))
			header.Write(be64(uint64(offset), uint64(len(m.Data))))
			header.Write(be32(fatMemberAlignShift, 0))
		} else {
			header.Write(be32(uint32(m.Cpu), 0, uint32(offset), uint32(len(m.Data)), fatMemberAlignShift))
		}
		padded := make([]byte, align(len(m.Data)))
		copy(padded, m.Data)
		body.Write(padded)
		offset += len(padded)
	}

	out := make([]byte, align(header.Len()))
	copy(out, header.Bytes())
	return append(out, body.Bytes()...)
}

// Archive returns a minimal ar(1) archive with no members
func Archive() []byte {
	return []byte("!<arch>\n")
}

// WriteFile writes data to root+path, creating parent directories
func WriteFile(t testing.TB, root, path string, data []byte) string {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", filepath.Dir(full), err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", full, err)
	}
	return full
}

func loadCmd(cmd uint32, payload []byte) []byte {
	size := 8 + len(payload)
	size = (size + 7) &^ 7
	out := make([]byte, size)
	binary.LittleEndian.PutUint32(out[0:4], cmd)
	binary.LittleEndian.PutUint32(out[4:8], uint32(size))
	copy(out[8:], payload)
	return out
}

func u32s(vals ...uint32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
	return out
}

func be32(vals ...uint32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
	return out
}

func be64(vals ...uint64) []byte {
	out := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint64(out[8*i:], v)
	}
	return out
}

func align(n int) int {
	const a = 1 << fatMemberAlignShift
	return (n + a - 1) &^ (a - 1)
}
