package validator

import "regexp"

// PlateConsonants is the suffix alphabet of post-2000 plates: no vowels, no Q.
const PlateConsonants = "BCDFGHJKLMNPRSTVWXYZ"

var (
	currentPlateRegex = regexp.MustCompile(`^[0-9]{4}[` + PlateConsonants + `]{3}$`)
	legacyPlateRegex  = regexp.MustCompile(`^[A-Z]{1,2}[0-9]{4}[A-Z]{1,2}$`)
)

// PlateEra tells which registration scheme a plate belongs to.
type PlateEra string

const (
	PlateEraUnknown PlateEra = ""
	PlateEraCurrent PlateEra = "current" // 1234BCD, since September 2000
	PlateEraLegacy  PlateEra = "legacy"  // M1234AB, SE1234A, 1971-2000 provincial
)

// DetectPlateEra reports the era of a normalised plate, or PlateEraUnknown.
func DetectPlateEra(value string) PlateEra {
	switch {
	case currentPlateRegex.MatchString(value):
		return PlateEraCurrent
	case legacyPlateRegex.MatchString(value):
		return PlateEraLegacy
	default:
		return PlateEraUnknown
	}
}

// ValidPlate validates a normalised Spanish vehicle registration plate of either era.
func ValidPlate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return DetectPlateEra(value) != PlateEraUnknown
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid plate; accepted formats: 4 digits + 3 consonant letters, or 1–2 letters + 4 digits + 1–2 letters",
			TranslationKey: "validation.plate_es",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
