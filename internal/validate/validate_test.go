package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "simple address", input: "user@example.com", valid: true},
		{name: "dotted local part", input: "first.last@company.co.uk", valid: true},
		{name: "no at sign", input: "not-an-email", valid: false},
		{name: "missing local part", input: "@missing.com", valid: false},
		{name: "missing domain", input: "no-domain@", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, Email(tc.input))
		})
	}
}

func TestSlug(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "basic", input: "Hello World", expected: "hello-world"},
		{name: "special chars", input: "AI & ML: A Guide!", expected: "ai-ml-a-guide"},
		{name: "empty", input: "", expected: ""},
		{name: "leading and trailing symbols", input: "--Already Slugged--", expected: "already-slugged"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slug(tc.input))
		})
	}
}

func TestSafeInt(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		def      int
		expected int
	}{
		{name: "valid int", input: "42", def: 0, expected: 42},
		{name: "zero", input: "0", def: 5, expected: 0},
		{name: "garbage returns default", input: "abc", def: 5, expected: 5},
		{name: "empty returns default", input: "", def: 3, expected: 3},
		{name: "float string is not an int", input: "3.14", def: 0, expected: 0},
		{name: "surrounding spaces ok", input: " 7 ", def: 0, expected: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SafeInt(tc.input, tc.def))
		})
	}
}
