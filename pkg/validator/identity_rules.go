package validator

import (
	"regexp"
	"strconv"
	"strings"
)

// IDFormat is the shape recognised in a national identity number.
type IDFormat string

const (
	IDFormatUnknown IDFormat = ""
	IDFormatDNI     IDFormat = "dni"
	IDFormatNIE     IDFormat = "nie"
)

// NationalIDControlLetters is indexed by number mod 23 to obtain the DNI/NIE check letter.
const NationalIDControlLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

const (
	cifControlLetters = "JABCDEFGHI"
	cifLetterControl  = "ABEH"   // organisation types whose control character is a letter
	cifDigitControl   = "NPQRSW" // organisation types whose control character is a digit
)

var (
	dniRegex = regexp.MustCompile(`^[0-9]{8}[A-Z]$`)
	nieRegex = regexp.MustCompile(`^[XYZ][0-9]{7}[A-Z]$`)
	cifRegex = regexp.MustCompile(`^[A-Z][0-9]{7}[0-9A-Z]$`)

	niePrefixDigit = map[byte]byte{'X': '0', 'Y': '1', 'Z': '2'}
)

// NationalIDCheck carries the checksum details behind a DNI/NIE verdict.
// Expected and Supplied are zero when the input never reached the checksum step.
type NationalIDCheck struct {
	Format   IDFormat
	Number   int
	Expected byte
	Supplied byte
	Valid    bool
}

// CheckNationalID inspects a normalised DNI or NIE.
// Anything that is not exactly one of the two shapes is invalid without any arithmetic.
func CheckNationalID(value string) NationalIDCheck {
	switch {
	case dniRegex.MatchString(value):
		return checkControlLetter(IDFormatDNI, value[:8], value[8])
	case nieRegex.MatchString(value):
		digits := string(niePrefixDigit[value[0]]) + value[1:8]
		return checkControlLetter(IDFormatNIE, digits, value[8])
	default:
		return NationalIDCheck{Format: IDFormatUnknown}
	}
}

func checkControlLetter(format IDFormat, digits string, supplied byte) NationalIDCheck {
	check := NationalIDCheck{Format: format, Supplied: supplied}

	number, err := parseDigits(digits)
	if err != nil {
		return check
	}

	check.Number = number
	check.Expected = NationalIDControlLetters[number%len(NationalIDControlLetters)]
	check.Valid = check.Expected == supplied
	return check
}

// parseDigits accepts ASCII digits only; signs, spaces and Unicode digits are rejected.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, ErrMalformedNumber
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrMalformedNumber
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrMalformedNumber
	}
	return n, nil
}

// ValidNationalID validates a normalised Spanish DNI or NIE including its control letter.
func ValidNationalID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return CheckNationalID(value).Valid
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid national ID",
			TranslationKey: "validation.national_id",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCIF validates a normalised Spanish company tax code (CIF).
func ValidCIF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return validCIF(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid company tax code",
			TranslationKey: "validation.cif",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func validCIF(value string) bool {
	if !cifRegex.MatchString(value) {
		return false
	}

	kind := value[0]
	body := value[1:8]
	control := value[8]

	sum := 0
	for i := 0; i < len(body); i++ {
		digit := int(body[i] - '0')
		// Odd positions (1st, 3rd, ...) are doubled and their digits summed.
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit = digit/10 + digit%10
			}
		}
		sum += digit
	}

	expected := (10 - sum%10) % 10
	asDigit := byte('0' + expected)
	asLetter := cifControlLetters[expected]

	switch {
	case strings.IndexByte(cifLetterControl, kind) >= 0:
		return control == asLetter
	case strings.IndexByte(cifDigitControl, kind) >= 0:
		return control == asDigit
	default:
		return control == asDigit || control == asLetter
	}
}
