package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridpass/authcore/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	newRequest := func(remoteAddr string, headers map[string]string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = remoteAddr
		for k, v := range headers {
			r.Header.Set(k, v)
		}
		return r
	}

	tests := []struct {
		name     string
		remote   string
		headers  map[string]string
		expected string
	}{
		{
			name:     "cloudflare header wins",
			remote:   "10.0.0.1:1234",
			headers:  map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"},
			expected: "203.0.113.7",
		},
		{
			name:     "digitalocean header before forwarded-for",
			remote:   "10.0.0.1:1234",
			headers:  map[string]string{"DO-Connecting-IP": "203.0.113.8", "X-Forwarded-For": "198.51.100.1"},
			expected: "203.0.113.8",
		},
		{
			name:     "forwarded-for takes leftmost entry",
			remote:   "10.0.0.1:1234",
			headers:  map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.2, 10.0.0.3"},
			expected: "198.51.100.1",
		},
		{
			name:     "real-ip fallback",
			remote:   "10.0.0.1:1234",
			headers:  map[string]string{"X-Real-IP": "198.51.100.2"},
			expected: "198.51.100.2",
		},
		{
			name:     "remote addr when no headers",
			remote:   "203.0.113.9:51234",
			expected: "203.0.113.9",
		},
		{
			name:     "malformed header falls through",
			remote:   "203.0.113.9:51234",
			headers:  map[string]string{"CF-Connecting-IP": "not-an-ip"},
			expected: "203.0.113.9",
		},
		{
			name:     "unspecified address rejected",
			remote:   "203.0.113.9:51234",
			headers:  map[string]string{"X-Real-IP": "0.0.0.0"},
			expected: "203.0.113.9",
		},
		{
			name:     "ipv6 normalized",
			remote:   "10.0.0.1:1234",
			headers:  map[string]string{"X-Forwarded-For": "2001:DB8::1"},
			expected: "2001:db8::1",
		},
		{
			name:     "ipv6 remote addr",
			remote:   "[2001:db8::2]:443",
			expected: "2001:db8::2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, clientip.GetIP(newRequest(tt.remote, tt.headers)))
		})
	}
}
