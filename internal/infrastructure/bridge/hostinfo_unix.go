//go:build unix

package bridge

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// CurrentHost reads the host name and machine from uname(2).
func CurrentHost() HostInfo {
	info := HostInfo{
		Hostname: "unknown",
		Username: currentUser(),
		Arch:     runtime.GOARCH,
	}

	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return info
	}
	if name := unix.ByteSliceToString(uts.Nodename[:]); name != "" {
		info.Hostname = name
	}
	info.Machine = unix.ByteSliceToString(uts.Machine[:])
	info.Release = unix.ByteSliceToString(uts.Release[:])
	return info
}
