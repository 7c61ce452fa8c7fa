package ip

import (
	"encoding/hex"
	"net"
	"runtime"
	"sync"
)

var (
	hostHexOnce sync.Once
	hostHex     string
)

// IPv4Hex returns the first non-loopback IPv4 address of the host as hex,
// "00000000" when none can be determined. The lookup happens once.
func IPv4Hex() string {
	hostHexOnce.Do(func() {
		hostHex = lookupIPv4Hex()
	})
	return hostHex
}

func lookupIPv4Hex() string {
	const unknown = "00000000"
	if runtime.GOOS == "windows" {
		return unknown
	}
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return unknown
	}

	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok && !ipNet.IP.IsLoopback() {
			if ipv4 := ipNet.IP.To4(); ipv4 != nil {
				return hex.EncodeToString(ipv4)
			}
		}
	}

	return unknown
}
