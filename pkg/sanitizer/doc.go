// Package sanitizer provides small, composable helpers that turn raw user
// input into the canonical form expected by the validator package.
//
// The helpers fall into two groups:
//
//   - Strings – trimming, Spanish-aware upper-casing, full-width folding and
//     whitespace/character stripping.
//
//   - Format – normalisers for e-mail addresses, Spanish phone numbers,
//     national identity numbers (DNI/NIE/CIF) and vehicle registration plates,
//     plus masking helpers for logging.
//
// Every normaliser is idempotent: running it on its own output returns the same
// string. The Apply, Compose and UntilStable helpers build pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.FoldWidth,
//	    sanitizer.ToUpper,
//	)
//
//	id := clean("  x1234567l ") // "X1234567L"
//
// # Error handling
//
// None of the helpers returns an error; malformed input is passed through in a
// best-effort normalised form and rejected later by the validator.
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
