//go:build !unix

package bridge

import (
	"os"
	"runtime"
)

// CurrentHost reads the host name from the OS.
func CurrentHost() HostInfo {
	info := HostInfo{
		Hostname: "unknown",
		Username: currentUser(),
		Arch:     runtime.GOARCH,
		Machine:  runtime.GOARCH,
	}
	if name, err := os.Hostname(); err == nil && name != "" {
		info.Hostname = name
	}
	return info
}
