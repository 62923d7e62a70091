package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeWhitespace collapses runs of whitespace into a single space.
func NormalizeWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// NFC composes combining sequences, so "e" followed by U+0301 becomes "é".
// Browsers and IMEs on some platforms submit decomposed text.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// NormalizeName prepares a person's name for pattern checks: composed
// accents, single spaces, no surrounding whitespace.
func NormalizeName(s string) string {
	return Apply(s, NFC, NormalizeWhitespace, Trim)
}
