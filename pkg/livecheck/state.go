package livecheck

import (
	"github.com/dmitrymomot/fieldcheck/pkg/dom"
	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

// Validity is the displayed state of a tracked field.
type Validity uint8

const (
	Untouched Validity = iota
	Valid
	Invalid
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "untouched"
	}
}

// FieldState is the coordinator's record of one tracked field.
// A blank value puts the field back to Untouched, matching the cleared markers.
type FieldState struct {
	Kind     field.Kind
	RawValue string
	Validity Validity
	Message  string
}

// ValidityOf maps an evaluation result to the state it leaves a field in.
func ValidityOf(res field.Result) Validity {
	switch {
	case res.Skipped:
		return Untouched
	case res.Valid:
		return Valid
	default:
		return Invalid
	}
}

// Trigger names what caused an evaluation.
type Trigger string

const (
	TriggerBlur   Trigger = "blur"
	TriggerInput  Trigger = "input"
	TriggerSubmit Trigger = "submit"
	TriggerManual Trigger = "manual"
)

// Evaluation describes one completed evaluation; it is passed to hooks.
type Evaluation struct {
	Element *dom.Element
	Trigger Trigger
	Kind    field.Kind
	Value   string
	Result  field.Result
}

// EvaluateHook observes evaluations. It runs under the document lock.
type EvaluateHook func(Evaluation)
