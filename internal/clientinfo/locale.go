// Package clientinfo maps raw request header strings to human-readable
// labels for the analytics dashboard. All functions are pure.
package clientinfo

import (
	"strings"
)

// UnknownLocale is the sentinel returned for an empty Accept-Language value.
const UnknownLocale = "(unknown)"

// languageNames maps ISO 639-1 language codes to display names.
var languageNames = map[string]string{ //nolint:gochecknoglobals
	"ar": "Arabic",
	"bg": "Bulgarian",
	"cs": "Czech",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"fa": "Persian",
	"fi": "Finnish",
	"fr": "French",
	"he": "Hebrew",
	"hi": "Hindi",
	"hu": "Hungarian",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"ms": "Malay",
	"nl": "Dutch",
	"no": "Norwegian",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sv": "Swedish",
	"th": "Thai",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// regionNames maps the region codes worth spelling out; anything else keeps
// its two-letter code in the label.
var regionNames = map[string]string{ //nolint:gochecknoglobals
	"US": "USA",
	"GB": "UK",
	"DE": "Germany",
	"FR": "France",
	"BR": "Brazil",
	"CN": "China",
	"TW": "Taiwan",
	"HK": "Hong Kong",
	"IN": "India",
	"AT": "Austria",
	"CH": "Switzerland",
}

// PrimaryLanguage extracts the first, highest-priority language tag from an
// Accept-Language header value, with any quality weight stripped.
func PrimaryLanguage(header string) string {
	if header == "" {
		return ""
	}

	first, _, _ := strings.Cut(header, ",")
	tag, _, _ := strings.Cut(first, ";")

	return strings.TrimSpace(tag)
}

// ParseLocale maps a language tag like "en-US" or "de" to a human-readable
// label. The empty string maps to UnknownLocale and unknown codes are echoed
// back unchanged; it never fails.
func ParseLocale(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return UnknownLocale
	}

	lang, region, hasRegion := strings.Cut(tag, "-")

	name, ok := languageNames[strings.ToLower(lang)]
	if !ok {
		return tag
	}

	if !hasRegion {
		return name
	}

	region = strings.ToUpper(region)
	if spelled, ok := regionNames[region]; ok {
		region = spelled
	}

	return name + " (" + region + ")"
}
