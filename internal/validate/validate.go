// Package validate provides pure form-input helpers shared by the public
// contact form and the admin content editors.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	v = validator.New() //nolint:gochecknoglobals

	slugPattern = regexp.MustCompile(`[^a-z0-9]+`) //nolint:gochecknoglobals
)

// Email reports whether s looks like a valid email address.
func Email(s string) bool {
	return v.Var(s, "required,email") == nil
}

// Slug derives a URL-safe slug from a title string.
func Slug(title string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(title), "-"), "-")
}

// SafeInt converts s to an int, returning def when s is not a valid integer.
// Prevents crashes when form fields contain non-numeric input.
func SafeInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}

	return n
}
