package buildcfg

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/arc-language/getargv/pkg/core"
)

var cgoTemplate = template.Must(template.New("cgo").Funcs(template.FuncMap{
	"arg": cgoArg,
}).Parse(`// Code generated by getargv-config. DO NOT EDIT.

//go:build darwin

package {{.Package}}

/*
#cgo CFLAGS: -mmacosx-version-min={{.Facts.DeploymentTarget}}
#cgo LDFLAGS: {{arg (printf "-L%s" .LinkSearch)}} -l{{.LinkLib}}
*/
import "C"

const (
	// DeploymentTarget is the minimum macOS version the library was built for
	DeploymentTarget = "{{.Facts.DeploymentTarget}}"

	// PidMax is the largest process ID the deployment target hands out
	PidMax = {{.Facts.PidMax}}
)
`))

// cgoArg quotes a directive argument containing spaces
func cgoArg(s string) string {
	if strings.ContainsAny(s, " \t") {
		return strconv.Quote(s)
	}
	return s
}

// RenderCgo returns the source of a Go file carrying the cgo flags and
// build facts of out
func RenderCgo(pkg string, out Output) ([]byte, error) {
	if out.Docs || out.LinkSearch == "" {
		return nil, fmt.Errorf("%w: no library was resolved, cgo flags are unavailable", core.ErrConfiguration)
	}
	if pkg == "" {
		return nil, fmt.Errorf("%w: package name is required", core.ErrConfiguration)
	}

	var buf bytes.Buffer
	err := cgoTemplate.Execute(&buf, struct {
		Output
		Package string
	}{out, pkg})
	if err != nil {
		return nil, fmt.Errorf("rendering cgo file: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting cgo file: %w", err)
	}
	return src, nil
}

// WriteCgoFile renders the cgo file for out and writes it to path
func WriteCgoFile(path, pkg string, out Output) error {
	src, err := RenderCgo(pkg, out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return &core.Error{Op: "writing cgo file", Path: path, Err: err}
	}
	return nil
}
