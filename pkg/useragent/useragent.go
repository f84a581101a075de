package useragent

import "strings"

// Device type classification results.
const (
	DeviceTypeDesktop = "desktop"
	DeviceTypeMobile  = "mobile"
	DeviceTypeTablet  = "tablet"
	DeviceTypeBot     = "bot"
	DeviceTypeUnknown = "unknown"
)

var botKeywords = []string{
	"bot", "crawler", "spider", "slurp", "curl/", "wget/",
	"facebookexternalhit", "headlesschrome", "lighthouse", "python-requests",
}

var tabletKeywords = []string{"ipad", "tablet", "kindle", "silk/", "playbook"}

var mobileKeywords = []string{
	"iphone", "ipod", "android", "mobile", "blackberry", "windows phone", "opera mini",
}

// DeviceType classifies a raw User-Agent header value. An empty value yields
// DeviceTypeUnknown; anything unrecognized is assumed to be a desktop
// browser.
func DeviceType(userAgent string) string {
	if userAgent == "" {
		return DeviceTypeUnknown
	}
	ua := strings.ToLower(userAgent)

	if containsAny(ua, botKeywords) {
		return DeviceTypeBot
	}
	// Tablet before mobile: tablet UAs commonly carry mobile keywords too.
	if containsAny(ua, tabletKeywords) {
		return DeviceTypeTablet
	}
	if containsAny(ua, mobileKeywords) {
		return DeviceTypeMobile
	}
	return DeviceTypeDesktop
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
