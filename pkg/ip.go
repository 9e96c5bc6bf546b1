package pkg

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ReadUserIP reads the client IP, respecting the reverse proxy headers
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		ipAddr = r.Header.Get("X-Forwarded-For")
		// X-Forwarded-For: client, proxy1, proxy2
		if idx := strings.Index(ipAddr, ","); idx >= 0 {
			ipAddr = ipAddr[:idx]
		}
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}
	ipAddr = strings.TrimSpace(ipAddr)

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}

	if net.ParseIP(ipAddr) == nil {
		return "", fmt.Errorf("ip addr %s is invalid", ipAddr)
	}

	return ipAddr, nil
}
