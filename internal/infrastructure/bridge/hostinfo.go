package bridge

import "os"

// HostInfo is what the hardware hash is derived from.
type HostInfo struct {
	Hostname string
	Username string
	Arch     string
	// Machine and Release are informational only.
	Machine string
	Release string
}

func currentUser() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "unknown"
}
