// Package formfield holds shared form field validation rules.
package formfield

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength caps contact message bodies, counted in characters
// rather than bytes so multibyte text is not penalized.
const MaxMessageLength = 500

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+\d\s()\-]{7,20}$`)
)

// Normalize trims surrounding whitespace so optional fields collapse to
// absent instead of empty string.
func Normalize(value string) string {
	return strings.TrimSpace(value)
}

// ValidEmail reports whether value has a plausible local@domain shape.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ValidPhone reports whether value looks like a dialable phone number:
// digits, leading plus, spaces, parentheses, and hyphens, length 7 to 20.
func ValidPhone(value string) bool {
	return phonePattern.MatchString(value)
}

// ValidMessageBody reports whether a message body is non-empty after
// trimming and within the character cap.
func ValidMessageBody(value string) bool {
	trimmed := Normalize(value)
	return trimmed != "" && utf8.RuneCountInString(trimmed) <= MaxMessageLength
}
