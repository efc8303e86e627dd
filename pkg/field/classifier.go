package field

import (
	"slices"
	"strings"
)

// Input types that mark a field as tracked regardless of its id.
const (
	InputTypeEmail = "email"
	InputTypeTel   = "tel"
)

// Default identifiers of the identity-number and plate inputs.
var (
	DefaultNationalIDFields = []string{"nif"}
	DefaultPlateFields      = []string{"matricula"}
)

// Descriptor is the part of an input element the classifier looks at.
type Descriptor struct {
	Tag  string // element tag name, case-insensitive
	Type string // declared input type, case-insensitive
	ID   string // stable identifier, case-sensitive
}

// Classifier decides whether an input is tracked and which rules apply.
// The zero value uses the default identifier sets.
type Classifier struct {
	NationalIDFields []string
	PlateFields      []string
}

// Classify returns the kind of a field, or false when the engine must ignore it.
// Type wins over id: an <input type="email" id="nif"> is an e-mail field.
func (c Classifier) Classify(d Descriptor) (Kind, bool) {
	if !strings.EqualFold(d.Tag, "input") {
		return 0, false
	}

	switch strings.ToLower(d.Type) {
	case InputTypeEmail:
		return KindEmail, true
	case InputTypeTel:
		return KindPhone, true
	}

	switch {
	case d.ID == "":
		return 0, false
	case slices.Contains(c.nationalIDFields(), d.ID):
		return KindNationalID, true
	case slices.Contains(c.plateFields(), d.ID):
		return KindPlate, true
	default:
		return 0, false
	}
}

func (c Classifier) nationalIDFields() []string {
	if len(c.NationalIDFields) == 0 {
		return DefaultNationalIDFields
	}
	return c.NationalIDFields
}

func (c Classifier) plateFields() []string {
	if len(c.PlateFields) == 0 {
		return DefaultPlateFields
	}
	return c.PlateFields
}

// Classify uses the default identifier sets.
func Classify(d Descriptor) (Kind, bool) {
	return Classifier{}.Classify(d)
}
