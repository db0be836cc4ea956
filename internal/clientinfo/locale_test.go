package clientinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryLanguage(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "single tag", header: "en-US", expected: "en-US"},
		{name: "weighted list", header: "de-DE,de;q=0.9,en;q=0.8", expected: "de-DE"},
		{name: "quality on first tag", header: "fr;q=0.9,en;q=0.8", expected: "fr"},
		{name: "spaces", header: " ja , en ", expected: "ja"},
		{name: "empty", header: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PrimaryLanguage(tc.header))
		})
	}
}

func TestParseLocale(t *testing.T) {
	testCases := []struct {
		name     string
		tag      string
		expected string
	}{
		{name: "english usa", tag: "en-US", expected: "English (USA)"},
		{name: "german bare", tag: "de", expected: "German"},
		{name: "british english", tag: "en-GB", expected: "English (UK)"},
		{name: "unmapped region keeps code", tag: "en-AU", expected: "English (AU)"},
		{name: "lowercase region", tag: "pt-br", expected: "Portuguese (Brazil)"},
		{name: "empty is unknown", tag: "", expected: UnknownLocale},
		{name: "unknown code echoed", tag: "xx-YY", expected: "xx-YY"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLocale(tc.tag))
		})
	}
}
