package macho

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/arc-language/getargv/pkg/core"
)

// ReadImage reads the library at path in full. Images compressed with xz,
// as shipped in release archives, are decompressed transparently.
func ReadImage(fsys core.FileSystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, &core.Error{Op: "reading library", Path: path, Err: err}
	}
	if !bytes.HasPrefix(data, xzMagic) {
		return data, nil
	}

	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &core.Error{Op: "opening xz stream", Path: path, Err: fmt.Errorf("%w: %v", core.ErrMalformedContainer, err)}
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, &core.Error{Op: "decompressing library", Path: path, Err: fmt.Errorf("%w: %v", core.ErrMalformedContainer, err)}
	}
	return out, nil
}
