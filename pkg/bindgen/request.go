// Package bindgen is the boundary to the external binding generator.
// It describes what to generate, renders the generator's manifest and
// runs it; parsing the header is left entirely to the generator.
package bindgen

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Allow-lists handed to the generator
const (
	AllowFunctions = ".*_of_pid|free_Argv.*"
	AllowTypes     = ".*Argv.*"

	// NoCopy matches result structs owning C pointers; copying them would
	// free the same memory twice
	NoCopy = ".*Result"
)

// Request describes one generator run
type Request struct {
	Package          string
	Header           string
	IncludeDirs      []string
	LibDir           string
	LinkLib          string
	DeploymentTarget string
	Docs             bool
	ClangArgs        []string

	AllowFunctions string
	AllowTypes     string
	NoCopy         string
}

// NewRequest returns a request with the default allow-lists
func NewRequest(pkg, header string) Request {
	return Request{
		Package:        pkg,
		Header:         header,
		AllowFunctions: AllowFunctions,
		AllowTypes:     AllowTypes,
		NoCopy:         NoCopy,
	}
}

type manifest struct {
	Generator  generatorSection  `yaml:"GENERATOR"`
	Parser     parserSection     `yaml:"PARSER"`
	Translator translatorSection `yaml:"TRANSLATOR"`
}

type generatorSection struct {
	PackageName        string      `yaml:"PackageName"`
	PackageDescription string      `yaml:"PackageDescription"`
	Includes           []string    `yaml:"Includes"`
	FlagGroups         []flagGroup `yaml:"FlagGroups,omitempty"`
}

type flagGroup struct {
	Name  string   `yaml:"name"`
	Flags []string `yaml:"flags"`
}

type parserSection struct {
	IncludePaths []string `yaml:"IncludePaths,omitempty"`
	SourcesPaths []string `yaml:"SourcesPaths"`
}

type translatorSection struct {
	Rules   map[string][]rule `yaml:"Rules"`
	MemTips []memTip          `yaml:"MemTips,omitempty"`
}

type rule struct {
	Action string `yaml:"action"`
	From   string `yaml:"from"`
}

type memTip struct {
	Target string `yaml:"target"`
	Self   string `yaml:"self"`
}

// Manifest renders req as a generator manifest
func Manifest(req Request) ([]byte, error) {
	if req.Header == "" {
		return nil, fmt.Errorf("bindgen: header is required")
	}
	pkg := req.Package
	if pkg == "" {
		pkg = "getargv"
	}

	cflags := append([]string(nil), req.ClangArgs...)
	for _, dir := range req.IncludeDirs {
		cflags = append(cflags, "-I"+dir)
	}
	if req.DeploymentTarget != "" {
		cflags = append(cflags, "-mmacosx-version-min="+req.DeploymentTarget)
	}

	m := manifest{
		Generator: generatorSection{
			PackageName:        pkg,
			PackageDescription: "Bindings to libgetargv",
			Includes:           []string{filepath.Base(req.Header)},
		},
		Parser: parserSection{
			IncludePaths: req.IncludeDirs,
			SourcesPaths: []string{req.Header},
		},
		Translator: translatorSection{
			Rules: map[string][]rule{
				"function": {{Action: "accept", From: req.AllowFunctions}},
				"type":     {{Action: "accept", From: req.AllowTypes}},
			},
		},
	}
	if len(cflags) > 0 {
		m.Generator.FlagGroups = append(m.Generator.FlagGroups, flagGroup{Name: "CFLAGS", Flags: cflags})
	}
	if !req.Docs && req.LibDir != "" {
		lib := req.LinkLib
		if lib == "" {
			lib = pkg
		}
		m.Generator.FlagGroups = append(m.Generator.FlagGroups, flagGroup{
			Name:  "LDFLAGS",
			Flags: []string{"-L" + req.LibDir, "-l" + lib},
		})
	}
	if req.NoCopy != "" {
		m.Translator.MemTips = []memTip{{Target: req.NoCopy, Self: "raw"}}
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return nil, fmt.Errorf("bindgen: encoding manifest: %w", err)
	}
	return data, nil
}
