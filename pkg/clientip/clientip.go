package clientip

import (
	"net"
	"net/http"
	"strings"
)

// singleIPHeaders are checked first, in order. Each carries exactly one IP.
var singleIPHeaders = []string{"CF-Connecting-IP", "DO-Connecting-IP"}

// GetIP returns the client IP address for the request. It never panics and
// always returns a non-empty string as long as RemoteAddr is set.
func GetIP(r *http.Request) string {
	for _, header := range singleIPHeaders {
		if ip := normalize(r.Header.Get(header)); ip != "" {
			return ip
		}
	}

	// X-Forwarded-For may hold a chain "client, proxy1, proxy2"; the
	// leftmost entry is the original client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := normalize(first); ip != "" {
			return ip
		}
	}

	if ip := normalize(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		if ip := normalize(host); ip != "" {
			return ip
		}
	}
	if ip := normalize(r.RemoteAddr); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// normalize validates a candidate and returns its canonical form, or ""
// when the candidate is not a usable client address.
func normalize(candidate string) string {
	ip := net.ParseIP(strings.TrimSpace(candidate))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
