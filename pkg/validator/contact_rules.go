package validator

import "regexp"

// MaxEmailLength is the longest address accepted by ValidEmailAddress.
const MaxEmailLength = 100

var (
	// local@domain where every domain label is 1-63 chars without leading/trailing hyphen
	emailAddressRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

	spanishPhoneRegex = regexp.MustCompile(`^[6-9][0-9]{8}$`)
)

// ValidEmailAddress validates the trimmed address against a pragmatic local@domain grammar.
// Unlike RFC 5322 parsing it rejects display names and quoted local parts.
func ValidEmailAddress(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= MaxEmailLength && emailAddressRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid email format",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field":      field,
				"max_length": MaxEmailLength,
			},
		},
	}
}

// ValidSpanishPhone validates a normalised Spanish phone number: nine ASCII
// digits, the first of which is 6, 7, 8 or 9.
func ValidSpanishPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return spanishPhoneRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a 9-digit number starting with 6, 7, 8, or 9",
			TranslationKey: "validation.phone_es",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
