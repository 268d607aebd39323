package util

import (
	"html"
	"strings"
	"unicode"
)

// SanitizeString trims whitespace and removes control characters from s.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// EscapeHTML escapes s so that user-typed or server-returned text can be
// embedded in markup without becoming markup itself.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// TruncateReference sanitizes a free-text reference field: trims, strips
// control characters, and caps the length. Returns fallback when the result
// is empty.
func TruncateReference(s string, maxLen int, fallback string) string {
	s = SanitizeString(s)
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
