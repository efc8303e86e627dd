package sanitizer

import "strings"

const (
	spainPlusPrefix   = "+34"
	spainIntlPrefix   = "0034"
	phoneNoiseChars   = "-()"
	plateNoiseChars   = "-"
	maskedPhoneSuffix = 4
)

var stripPhoneNoise = UntilStable(func(s string) string {
	s = RemoveWhitespace(s)
	s = RemoveChars(s, phoneNoiseChars)
	s = strings.ReplaceAll(s, spainPlusPrefix, "")
	return strings.TrimPrefix(s, spainIntlPrefix)
})

// NormalizeEmail only trims. Case is preserved: the local part of an address
// is case-sensitive and must reach the validator untouched.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// NormalizeSpanishPhone strips formatting and the Spanish country code so that
// "+34 612-34-56-78", "0034 (612) 345 678" and "612345678" compare equal.
// "+34" is removed wherever it appears; "0034" only as a leading prefix, so a
// national number that merely contains those digits is left intact.
func NormalizeSpanishPhone(phone string) string {
	return stripPhoneNoise(FoldWidth(strings.TrimSpace(phone)))
}

// NormalizeNationalID upper-cases and removes all whitespace from a DNI/NIE/CIF.
func NormalizeNationalID(id string) string {
	return RemoveWhitespace(ToUpper(FoldWidth(strings.TrimSpace(id))))
}

// NormalizePlate upper-cases a registration plate and strips spaces and hyphens
// ("1234-bcd" and "M 1234 AB" become "1234BCD" and "M1234AB").
func NormalizePlate(plate string) string {
	return RemoveChars(RemoveWhitespace(ToUpper(FoldWidth(strings.TrimSpace(plate)))), plateNoiseChars)
}

// MaskPhone keeps the last four digits so numbers can be logged without exposing them.
func MaskPhone(phone string) string {
	digits := KeepDigits(phone)
	if len(digits) < maskedPhoneSuffix {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-maskedPhoneSuffix) + digits[len(digits)-maskedPhoneSuffix:]
}

// MaskNationalID hides everything but the control letter of an identity number.
func MaskNationalID(id string) string {
	if len(id) <= 1 {
		return strings.Repeat("*", len(id))
	}
	return strings.Repeat("*", len(id)-1) + id[len(id)-1:]
}
