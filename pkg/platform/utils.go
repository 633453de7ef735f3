// pkg/platform/utils.go
package platform

import (
	"runtime"
	"strings"
)

type hostInfo struct {
	os   string
	arch string
}

func (h hostInfo) vendor() Vendor {
	if v, ok := goosVendor[h.os]; ok {
		return v
	}
	return Unknown
}

// runtimeHost is used where the kernel cannot be asked directly
func runtimeHost() hostInfo {
	return hostInfo{os: runtime.GOOS, arch: string(archFromMachine(runtime.GOARCH))}
}

// archFromMachine normalizes uname machine strings; unknown values pass through
func archFromMachine(machine string) Arch {
	if a, err := ParseArch(strings.ToLower(machine)); err == nil {
		return a
	}
	return Arch(machine)
}
