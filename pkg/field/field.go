package field

import (
	"github.com/dmitrymomot/fieldcheck/pkg/sanitizer"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Result is the verdict for one value. Skipped marks an empty value, on which
// the engine has no opinion; a skipped result is always Valid.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
}

var normalizers = map[Kind]func(string) string{
	KindEmail:      sanitizer.NormalizeEmail,
	KindPhone:      sanitizer.NormalizeSpanishPhone,
	KindNationalID: sanitizer.NormalizeNationalID,
	KindPlate:      sanitizer.NormalizePlate,
}

// Normalize returns the canonical form of raw for the given kind.
// Unknown kinds are only trimmed.
func Normalize(kind Kind, raw string) string {
	if fn, ok := normalizers[kind]; ok {
		return fn(raw)
	}
	return sanitizer.Trim(raw)
}

// Rule returns the validator rule for an already normalised value.
// It panics on an invalid kind: the set of kinds is closed and a stray value is a programming error.
func Rule(kind Kind, name, normalized string) validator.Rule {
	switch kind {
	case KindEmail:
		return validator.ValidEmailAddress(name, normalized)
	case KindPhone:
		return validator.ValidSpanishPhone(name, normalized)
	case KindNationalID:
		return validator.ValidNationalID(name, normalized)
	case KindPlate:
		return validator.ValidPlate(name, normalized)
	default:
		panic("field: rule requested for invalid kind " + kind.String())
	}
}

// Evaluate checks an already normalised, non-empty value.
func Evaluate(kind Kind, normalized string) Result {
	if !kind.Valid() {
		return Result{Valid: true, Skipped: true}
	}
	rule := Rule(kind, kind.String(), normalized)
	if rule.Check() {
		return Result{Valid: true}
	}
	return Result{Valid: false, Message: rule.Error.Message}
}

// Validate normalises raw and evaluates it. Blank input is skipped; input that
// only normalises to nothing (a bare "+34") is evaluated and rejected.
func Validate(kind Kind, raw string) Result {
	if sanitizer.Trim(raw) == "" {
		return Result{Valid: true, Skipped: true}
	}
	return Evaluate(kind, Normalize(kind, raw))
}
