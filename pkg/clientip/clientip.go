package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP resolves the originating client address. Proxy headers are consulted
// in order CF-Connecting-IP, X-Forwarded-For (first valid entry), X-Real-IP,
// then RemoteAddr. Invalid values are skipped; "" means nothing was usable.
func GetIP(r *http.Request) string {
	if ip := parseIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for part := range strings.SplitSeq(fwd, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}
	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
