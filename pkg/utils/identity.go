package utils

import (
	"net"
	"strings"
)

// UnknownIdentity is shared by every caller whose address cannot be told.
const UnknownIdentity = "unknown"

// CallerIdentity picks the like key of a request: the first X-Forwarded-For
// entry, then the direct peer address without its port.
func CallerIdentity(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		if first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0]); first != "" {
			return first
		}
	}

	if remoteAddr == "" {
		return UnknownIdentity
	}

	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}

	if host == "" {
		return UnknownIdentity
	}

	return host
}
