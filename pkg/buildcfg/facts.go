// Package buildcfg derives the build facts for libgetargv from its
// minimum OS version and publishes them for the rest of the build.
package buildcfg

import (
	"fmt"

	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/env"
	"github.com/arc-language/getargv/pkg/macho"
	"github.com/arc-language/getargv/pkg/platform"
	"github.com/arc-language/getargv/pkg/version"
)

// PID_MAX values either side of the cutoff
const (
	PidMaxModern uint32 = 99999
	PidMaxLegacy uint32 = 30000
)

// Cutoff is the first release with the larger PID_MAX
var Cutoff = version.New(10, 6, 0)

// Source records where the deployment target came from
type Source string

const (
	// SourceOverride means MACOSX_DEPLOYMENT_TARGET was set
	SourceOverride Source = "override"
	// SourceLibrary means the version was read from the library itself
	SourceLibrary Source = "library"
)

// BuildFacts are the values derived for the target
type BuildFacts struct {
	DeploymentTarget version.Version `yaml:"deployment_target" json:"deployment_target"`
	PidMax           uint32          `yaml:"pid_max" json:"pid_max"`
	Source           Source          `yaml:"source" json:"source"`
}

// Threshold returns the PID_MAX for a deployment target
func Threshold(v version.Version) uint32 {
	if v.AtLeast(Cutoff) {
		return PidMaxModern
	}
	return PidMaxLegacy
}

// ResolveBuildFacts takes the deployment target from MACOSX_DEPLOYMENT_TARGET
// when it is set and otherwise reads it from the library at libPath.
// A malformed override is an error; the library is not consulted instead.
func ResolveBuildFacts(e core.Environment, fsys core.FileSystem, libPath string, arch platform.Arch) (BuildFacts, error) {
	if text, ok := e.Lookup(env.DeploymentTarget); ok {
		v, err := version.Parse(text)
		if err != nil {
			return BuildFacts{}, fmt.Errorf("%s: %w", env.DeploymentTarget, err)
		}
		return BuildFacts{DeploymentTarget: v, PidMax: Threshold(v), Source: SourceOverride}, nil
	}

	v, err := macho.FindMinimumOSVersion(fsys, libPath, arch)
	if err != nil {
		return BuildFacts{}, err
	}
	return BuildFacts{DeploymentTarget: v, PidMax: Threshold(v), Source: SourceLibrary}, nil
}
