//go:build darwin || linux || freebsd || netbsd || openbsd || dragonfly

package platform

import (
	"strings"

	"golang.org/x/sys/unix"
)

// detectHost reports the kernel name and machine from uname(2).
func detectHost() hostInfo {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return runtimeHost()
	}
	return hostInfo{
		os:   strings.ToLower(unix.ByteSliceToString(u.Sysname[:])),
		arch: string(archFromMachine(unix.ByteSliceToString(u.Machine[:]))),
	}
}
