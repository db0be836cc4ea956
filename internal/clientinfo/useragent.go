package clientinfo

import (
	"strings"
)

// Unknown is the label used when a user-agent gives no usable signal.
const Unknown = "Unknown"

// UAInfo is the coarse classification of a user-agent string.
type UAInfo struct {
	Browser string
	OS      string
	Device  string
}

// uaRule matches a substring token to a label. Rules are evaluated in order:
// more specific tokens (Edg, OPR, SamsungBrowser) must come before the
// broader engine tokens (Chrome, Safari) they also carry, or everything
// Chromium-based would be misclassified as Chrome.
type uaRule struct {
	token string
	label string
}

var browserRules = []uaRule{ //nolint:gochecknoglobals
	{token: "Edg", label: "Edge"},
	{token: "OPR", label: "Opera"},
	{token: "Opera", label: "Opera"},
	{token: "SamsungBrowser", label: "Samsung Internet"},
	{token: "Firefox", label: "Firefox"},
	{token: "Chrome", label: "Chrome"},
	{token: "CriOS", label: "Chrome"},
	{token: "Safari", label: "Safari"},
	{token: "MSIE", label: "Internet Explorer"},
	{token: "Trident", label: "Internet Explorer"},
}

// osRules: iPhone/iPad must be tested before Mac (iOS agents claim
// "like Mac OS X") and Android before Linux (Android agents claim Linux).
var osRules = []uaRule{ //nolint:gochecknoglobals
	{token: "Windows", label: "Windows"},
	{token: "iPhone", label: "iOS"},
	{token: "iPad", label: "iOS"},
	{token: "Android", label: "Android"},
	{token: "Mac OS X", label: "macOS"},
	{token: "Macintosh", label: "macOS"},
	{token: "CrOS", label: "ChromeOS"},
	{token: "Linux", label: "Linux"},
}

var botTokens = []string{"bot", "spider", "crawl", "slurp", "curl", "wget"} //nolint:gochecknoglobals

// ParseUserAgent classifies a raw user-agent string into browser, operating
// system and device type by ordered substring matching. It is deliberately
// coarse: good enough for a personal site's analytics, with no parser
// dependency and no fingerprinting beyond what is already stored.
func ParseUserAgent(ua string) UAInfo {
	info := UAInfo{Browser: Unknown, OS: Unknown, Device: Unknown}

	if ua == "" {
		return info
	}

	if isBot(ua) {
		return UAInfo{Browser: "Bot", OS: "Bot", Device: "Bot"}
	}

	for _, r := range browserRules {
		if strings.Contains(ua, r.token) {
			info.Browser = r.label
			break
		}
	}

	for _, r := range osRules {
		if strings.Contains(ua, r.token) {
			info.OS = r.label
			break
		}
	}

	info.Device = deviceType(ua)

	return info
}

func isBot(ua string) bool {
	lower := strings.ToLower(ua)
	for _, token := range botTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}

	return false
}

// deviceType: iPad and Android-without-Mobile are tablets; any other Mobi or
// phone token is a phone; everything else with an OS signal is a desktop.
func deviceType(ua string) string {
	switch {
	case strings.Contains(ua, "iPad"):
		return "Tablet"
	case strings.Contains(ua, "Android") && !strings.Contains(ua, "Mobile"):
		return "Tablet"
	case strings.Contains(ua, "Mobi") || strings.Contains(ua, "iPhone") || strings.Contains(ua, "Android"):
		return "Mobile"
	default:
		return "Desktop"
	}
}
