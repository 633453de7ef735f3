// pkg/platform/detect.go
package platform

import (
	"fmt"

	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/env"
)

// Arch is a target architecture the library can be built for
type Arch string

const (
	X86_64 Arch = "x86_64"
	Arm64  Arch = "arm64"
)

// ParseArch maps Go and Mach-O style architecture names onto Arch.
// Anything else is a configuration error; there is no default.
func ParseArch(s string) (Arch, error) {
	switch s {
	case "amd64", "x86_64":
		return X86_64, nil
	case "arm64", "aarch64":
		return Arm64, nil
	case "":
		return "", fmt.Errorf("%w: target architecture not set", core.ErrConfiguration)
	default:
		return "", fmt.Errorf("%w: unknown arch %q", core.ErrConfiguration, s)
	}
}

// GOARCH returns the Go name of the architecture
func (a Arch) GOARCH() string {
	if a == X86_64 {
		return "amd64"
	}
	return string(a)
}

func (a Arch) String() string {
	return string(a)
}

// Vendor identifies who owns a platform
type Vendor string

const (
	Apple   Vendor = "apple"
	PC      Vendor = "pc"
	Unknown Vendor = "unknown"
)

var goosVendor = map[string]Vendor{
	"darwin":    Apple,
	"ios":       Apple,
	"tvos":      Apple,
	"watchos":   Apple,
	"visionos":  Apple,
	"windows":   PC,
	"linux":     Unknown,
	"android":   Unknown,
	"freebsd":   Unknown,
	"netbsd":    Unknown,
	"openbsd":   Unknown,
	"dragonfly": Unknown,
	"solaris":   Unknown,
	"illumos":   Unknown,
	"aix":       Unknown,
	"plan9":     Unknown,
	"js":        Unknown,
	"wasip1":    Unknown,
}

// VendorForOS returns the vendor of a GOOS value
func VendorForOS(goos string) (Vendor, error) {
	if goos == "" {
		return "", fmt.Errorf("%w: target OS not set", core.ErrConfiguration)
	}
	v, ok := goosVendor[goos]
	if !ok {
		return "", fmt.Errorf("%w: unknown target OS %q", core.ErrConfiguration, goos)
	}
	return v, nil
}

// Platform describes the host the resolver runs on and the target being built
type Platform struct {
	HostOS       string // kernel name, lowercased (darwin, linux, ...)
	HostArch     string // machine name as reported by the kernel
	HostVendor   Vendor
	TargetOS     string
	TargetArch   Arch
	TargetVendor Vendor
}

// Detect reads the target from e and the host from the running kernel
func Detect(e core.Environment) (*Platform, error) {
	arch, err := ParseArch(env.Get(e, env.TargetArch))
	if err != nil {
		return nil, err
	}
	goos := env.Get(e, env.TargetOS)
	vendor, err := VendorForOS(goos)
	if err != nil {
		return nil, err
	}

	host := detectHost()
	return &Platform{
		HostOS:       host.os,
		HostArch:     host.arch,
		HostVendor:   host.vendor(),
		TargetOS:     goos,
		TargetArch:   arch,
		TargetVendor: vendor,
	}, nil
}

// IsCrossCompiling reports whether exactly one of host and target is an
// Apple platform. When neither is, this also returns false.
func (p *Platform) IsCrossCompiling() bool {
	return IsCrossCompiling(p.HostVendor, p.TargetVendor)
}

// IsCrossCompiling is host-is-apple XOR target-is-apple
func IsCrossCompiling(host, target Vendor) bool {
	return (host == Apple) != (target == Apple)
}

// RequireAppleTarget fails unless the target is an Apple platform. The
// KERN_PROCARGS2 sysctl libgetargv relies on only exists in xnu kernels.
func (p *Platform) RequireAppleTarget() error {
	if p.TargetVendor == Apple {
		return nil
	}
	return fmt.Errorf("%w: target %s/%s is not an Apple platform. "+
		"The KERN_PROCARGS2 sysctl only exists in xnu kernels; BSD or Linux users should just read "+
		"/proc/$PID/cmdline which is much easier and faster, Solaris users should use pargs. "+
		"If you are writing a cross platform program, only import getargv from files "+
		"constrained with //go:build darwin",
		core.ErrConfiguration, p.TargetOS, p.TargetArch)
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("host %s/%s (%s) -> target %s/%s (%s)",
		p.HostOS, p.HostArch, p.HostVendor, p.TargetOS, p.TargetArch, p.TargetVendor)
}
