// Package sanitize strips or allow-lists HTML markup in untrusted text
// before it is persisted or rendered.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	// DefaultPlainMax is the default length limit for plain-text fields.
	DefaultPlainMax = 500

	// DefaultRichMax is the default length limit for rich-text fields.
	DefaultRichMax = 50000
)

// Mode classifies a field as plain text or rich HTML. The classification is
// decided by the caller per field, as data rather than scattered conditionals.
type Mode int

const (
	// ModePlain strips every markup tag.
	ModePlain Mode = iota
	// ModeRich keeps the structural/formatting tag allow-list.
	ModeRich
)

var (
	plainPolicy = bluemonday.StrictPolicy() //nolint:gochecknoglobals

	richPolicy = newRichPolicy() //nolint:gochecknoglobals
)

// newRichPolicy builds the rich-text allow-list: structural and formatting
// tags only, a fixed attribute set per tag and http/https/mailto URL schemes.
// Event handlers, script, style and iframe are never allowed.
func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "strong", "em", "b", "i", "u", "s",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li",
		"blockquote", "hr",
		"table", "thead", "tbody", "tr",
		"figure", "figcaption",
		"sup", "sub", "mark",
	)

	p.AllowAttrs("href", "title", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "title", "width", "height", "loading").OnElements("img")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowAttrs("class").OnElements("span", "div", "code", "pre")

	// tags registered only through AllowAttrs are stripped when they carry
	// none of those attributes; keep them anyway, a bare <a> is legal
	p.AllowNoAttrs().OnElements("a", "img", "td", "th")

	p.AllowURLSchemes("http", "https", "mailto")

	return p
}

// Plain removes every markup tag, trims whitespace and truncates to max
// runes. Empty input yields an empty string. Never errors: malformed markup
// degrades to a best-effort cleaned string.
func Plain(text string, max int) string {
	if text == "" {
		return ""
	}

	cleaned := plainPolicy.Sanitize(strings.TrimSpace(text))

	return truncate(cleaned, max)
}

// Rich removes disallowed elements and attributes while keeping the fixed
// structural/formatting allow-list, then truncates to max runes. Never
// errors.
func Rich(text string, max int) string {
	if text == "" {
		return ""
	}

	cleaned := richPolicy.Sanitize(strings.TrimSpace(text))

	return truncate(cleaned, max)
}

// Apply runs the sanitizer selected by mode.
func Apply(mode Mode, text string, max int) string {
	if mode == ModeRich {
		return Rich(text, max)
	}

	return Plain(text, max)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
