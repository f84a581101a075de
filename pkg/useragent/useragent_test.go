package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridpass/authcore/pkg/useragent"
)

func TestDeviceType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
		expected  string
	}{
		{
			name:      "desktop chrome",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			expected:  useragent.DeviceTypeDesktop,
		},
		{
			name:      "desktop firefox on linux",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			expected:  useragent.DeviceTypeDesktop,
		},
		{
			name:      "iphone safari",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148 Safari/604.1",
			expected:  useragent.DeviceTypeMobile,
		},
		{
			name:      "android chrome",
			userAgent: "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36",
			expected:  useragent.DeviceTypeMobile,
		},
		{
			name:      "ipad is a tablet despite mobile token",
			userAgent: "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148 Safari/604.1",
			expected:  useragent.DeviceTypeTablet,
		},
		{
			name:      "googlebot",
			userAgent: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			expected:  useragent.DeviceTypeBot,
		},
		{
			name:      "curl",
			userAgent: "curl/8.4.0",
			expected:  useragent.DeviceTypeBot,
		},
		{
			name:      "empty",
			userAgent: "",
			expected:  useragent.DeviceTypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, useragent.DeviceType(tt.userAgent))
		})
	}
}
