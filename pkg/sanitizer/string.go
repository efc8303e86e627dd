package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// spanishUpper is safe for concurrent use as long as it is only used through String.
var spanishUpper = cases.Upper(language.Spanish)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper converts a string to uppercase using Spanish casing rules.
func ToUpper(s string) string {
	return spanishUpper.String(s)
}

// FoldWidth maps full-width forms (common with Asian IME keyboards) to their ASCII counterparts.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// RemoveWhitespace drops every Unicode whitespace rune, including internal ones.
func RemoveWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeWhitespace collapses runs of whitespace to a single space and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveChars removes all occurrences of the specified characters from a string.
func RemoveChars(s string, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// KeepDigits keeps only ASCII digits.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
