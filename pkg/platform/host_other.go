//go:build !(darwin || linux || freebsd || netbsd || openbsd || dragonfly)

package platform

func detectHost() hostInfo {
	return runtimeHost()
}
