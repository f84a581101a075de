// Package useragent classifies User-Agent strings into coarse device types
// for session metadata and analytics.
//
// Classification is keyword-based and deliberately coarse: bot, tablet,
// mobile, or desktop. Tablets are checked before phones because tablet
// User-Agent strings usually also contain mobile keywords.
//
//	deviceType := useragent.DeviceType(r.UserAgent()) // "mobile"
package useragent
