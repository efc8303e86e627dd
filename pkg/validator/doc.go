// Package validator provides declarative validation rules for the values a
// Spanish customer form collects: e-mail addresses, phone numbers, national
// identity numbers (DNI/NIE), company tax codes (CIF) and vehicle plates.
//
// Every exported rule constructor returns a Rule: a Check func paired with a
// translation-friendly ValidationError. Rules are evaluated with Apply, which
// aggregates failures into a ValidationErrors slice that satisfies the error
// interface.
//
// Rules expect normalised input. Run raw text through the sanitizer package
// (or field.Normalize) first; the rules themselves never trim or case-fold.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.ValidNationalID("nif", sanitizer.NormalizeNationalID(nif)),
//	    validator.ValidPlate("plate", sanitizer.NormalizePlate(plate)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Messages() groups messages per field
//	}
//
// # Checksums
//
// CheckNationalID exposes the details behind a DNI/NIE verdict (recognised
// format, parsed number, expected and supplied control letters). Numeric
// segments are parsed with a fallible helper, so malformed input is reported
// as invalid instead of panicking.
//
// The package holds no mutable state and is safe for concurrent use.
package validator
