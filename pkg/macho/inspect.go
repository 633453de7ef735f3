package macho

import (
	"bytes"
	"debug/macho"
	"fmt"

	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/version"
)

// Slice describes one architecture found in a library
type Slice struct {
	Cpu     string           `yaml:"cpu" json:"cpu"`
	Type    string           `yaml:"type" json:"type"`
	Archive bool             `yaml:"archive,omitempty" json:"archive,omitempty"`
	MinOS   *version.Version `yaml:"min_os,omitempty" json:"min_os,omitempty"`
}

// Inspect lists every architecture in the library at path together with
// its minimum OS version, if one is recorded
func Inspect(fsys core.FileSystem, path string) ([]Slice, error) {
	data, err := ReadImage(fsys, path)
	if err != nil {
		return nil, err
	}

	if !isFat(data) {
		s, err := inspectThin(data)
		if err != nil {
			return nil, &core.Error{Op: "inspecting", Path: path, Err: err}
		}
		return []Slice{s}, nil
	}

	members, err := parseFat(data)
	if err != nil {
		return nil, &core.Error{Op: "inspecting", Path: path, Err: err}
	}
	slices := make([]Slice, 0, len(members))
	for _, m := range members {
		slice := m.slice(data)
		if isArchive(slice) {
			slices = append(slices, Slice{Cpu: m.Cpu.String(), Type: "archive", Archive: true})
			continue
		}
		s, err := inspectThin(slice)
		if err != nil {
			return nil, &core.Error{Op: fmt.Sprintf("inspecting %s slice", m.Cpu), Path: path, Err: err}
		}
		slices = append(slices, s)
	}
	return slices, nil
}

func inspectThin(data []byte) (Slice, error) {
	f, err := macho.NewFile(bytes.NewReader(data))
	if err != nil {
		return Slice{}, fmt.Errorf("%w: %v", core.ErrMalformedContainer, err)
	}
	defer f.Close()

	s := Slice{Cpu: f.Cpu.String(), Type: f.Type.String()}
	packed, ok, err := scanLoads(f)
	if err != nil {
		return Slice{}, err
	}
	if ok {
		v := version.FromPacked(packed)
		s.MinOS = &v
	}
	return s, nil
}
