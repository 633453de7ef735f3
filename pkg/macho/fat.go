package macho

import (
	"debug/macho"
	"encoding/binary"
	"fmt"

	"github.com/arc-language/getargv/pkg/core"
)

// Member is one architecture slice of a fat container
type Member struct {
	Cpu    macho.Cpu
	SubCpu uint32
	Offset uint64
	Size   uint64
}

func isFat(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	m := binary.BigEndian.Uint32(data)
	return m == fatMagic || m == fatMagic64
}

// parseFat reads the fat header and arch table without parsing members,
// so archive members can be reported distinctly (debug/macho.NewFatFile
// rejects them outright).
func parseFat(data []byte) ([]Member, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: truncated fat header", core.ErrMalformedContainer)
	}
	magic := binary.BigEndian.Uint32(data[0:4])
	count := uint64(binary.BigEndian.Uint32(data[4:8]))

	entrySize := uint64(20)
	if magic == fatMagic64 {
		entrySize = 32
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: fat header lists no architectures", core.ErrMalformedContainer)
	}
	if 8+count*entrySize > uint64(len(data)) {
		return nil, fmt.Errorf("%w: fat arch table of %d entries exceeds file size", core.ErrMalformedContainer, count)
	}

	members := make([]Member, 0, count)
	for i := uint64(0); i < count; i++ {
		entry := data[8+i*entrySize : 8+(i+1)*entrySize]
		m := Member{
			Cpu:    macho.Cpu(binary.BigEndian.Uint32(entry[0:4])),
			SubCpu: binary.BigEndian.Uint32(entry[4:8]),
		}
		if magic == fatMagic64 {
			m.Offset = binary.BigEndian.Uint64(entry[8:16])
			m.Size = binary.BigEndian.Uint64(entry[16:24])
		} else {
			m.Offset = uint64(binary.BigEndian.Uint32(entry[8:12]))
			m.Size = uint64(binary.BigEndian.Uint32(entry[12:16]))
		}
		if m.Size == 0 || m.Offset > uint64(len(data)) || m.Size > uint64(len(data))-m.Offset {
			return nil, fmt.Errorf("%w: %s slice [%d, +%d) is outside the file", core.ErrMalformedContainer, m.Cpu, m.Offset, m.Size)
		}
		members = append(members, m)
	}
	return members, nil
}

// slice returns the member's bytes; bounds were validated by parseFat
func (m Member) slice(data []byte) []byte {
	return data[m.Offset : m.Offset+m.Size]
}

func isArchive(data []byte) bool {
	return len(data) >= len(archiveMagic) && string(data[:len(archiveMagic)]) == archiveMagic
}
