package buildcfg

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arc-language/getargv/pkg/env"
)

// Output is everything the resolver hands to the rest of the build
type Output struct {
	// Docs is set in documentation mode, where no library is linked
	Docs bool `yaml:"docs,omitempty" json:"docs,omitempty"`

	// LinkSearch is the canonical directory holding the library
	LinkSearch string `yaml:"link_search,omitempty" json:"link_search,omitempty"`

	// LinkLib is the library link name
	LinkLib string `yaml:"link_lib,omitempty" json:"link_lib,omitempty"`

	// Library is the full path of the library the facts were derived from
	Library string `yaml:"library,omitempty" json:"library,omitempty"`

	Facts BuildFacts `yaml:"facts" json:"facts"`

	// Triggers invalidate the output when they change
	Triggers Triggers `yaml:"triggers" json:"triggers"`
}

// Triggers lists the inputs the output depends on
type Triggers struct {
	Env   []string `yaml:"env,omitempty" json:"env,omitempty"`
	Files []string `yaml:"files,omitempty" json:"files,omitempty"`
}

// Publish writes the output as directives, one per line.
// Documentation mode only publishes the triggers.
func Publish(w io.Writer, out Output) error {
	bw := bufio.NewWriter(w)
	line := func(format string, args ...any) {
		fmt.Fprintf(bw, format+"\n", args...)
	}

	if !out.Docs {
		line("link-search=%s", out.LinkSearch)
		line("link-lib=%s", out.LinkLib)
	}
	for _, key := range out.Triggers.Env {
		line("rerun-if-env-changed=%s", key)
	}
	for _, path := range out.Triggers.Files {
		line("rerun-if-changed=%s", path)
	}
	if !out.Docs {
		target := out.Facts.DeploymentTarget.String()
		line("env=%s=%s", env.DeploymentTarget, target)
		line("metadata=%s=%s", env.DeploymentTarget, target)
		line("metadata=PID_MAX=%d", out.Facts.PidMax)
	}

	return bw.Flush()
}
