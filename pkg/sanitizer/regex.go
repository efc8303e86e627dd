package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Phone and numeric extraction
	nonDigitRegex = regexp.MustCompile(`\D`)
)
