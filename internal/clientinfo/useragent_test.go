package clientinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserAgent(t *testing.T) {
	testCases := []struct {
		name     string
		ua       string
		expected UAInfo
	}{
		{
			name:     "chrome on windows desktop",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36",
			expected: UAInfo{Browser: "Chrome", OS: "Windows", Device: "Desktop"},
		},
		{
			name:     "mobile safari on iphone",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Safari/604.1",
			expected: UAInfo{Browser: "Safari", OS: "iOS", Device: "Mobile"},
		},
		{
			name:     "edge is not chrome",
			ua:       "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/120.0 Safari/537.36 Edg/120.0",
			expected: UAInfo{Browser: "Edge", OS: "Windows", Device: "Desktop"},
		},
		{
			name:     "opera is not chrome",
			ua:       "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 Chrome/119.0 Safari/537.36 OPR/105.0",
			expected: UAInfo{Browser: "Opera", OS: "Linux", Device: "Desktop"},
		},
		{
			name:     "samsung internet on android phone",
			ua:       "Mozilla/5.0 (Linux; Android 13; SM-S918B) AppleWebKit/537.36 SamsungBrowser/23.0 Chrome/115.0 Mobile Safari/537.36",
			expected: UAInfo{Browser: "Samsung Internet", OS: "Android", Device: "Mobile"},
		},
		{
			name:     "android tablet without mobile token",
			ua:       "Mozilla/5.0 (Linux; Android 13; SM-X906C) AppleWebKit/537.36 Chrome/112.0 Safari/537.36",
			expected: UAInfo{Browser: "Chrome", OS: "Android", Device: "Tablet"},
		},
		{
			name:     "ipad is tablet",
			ua:       "Mozilla/5.0 (iPad; CPU OS 16_5 like Mac OS X) AppleWebKit/605.1.15 Safari/604.1",
			expected: UAInfo{Browser: "Safari", OS: "iOS", Device: "Tablet"},
		},
		{
			name:     "firefox on macos",
			ua:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:120.0) Gecko/20100101 Firefox/120.0",
			expected: UAInfo{Browser: "Firefox", OS: "macOS", Device: "Desktop"},
		},
		{
			name:     "crawler",
			ua:       "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			expected: UAInfo{Browser: "Bot", OS: "Bot", Device: "Bot"},
		},
		{
			name:     "empty is unknown",
			ua:       "",
			expected: UAInfo{Browser: Unknown, OS: Unknown, Device: Unknown},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseUserAgent(tc.ua))
		})
	}
}
