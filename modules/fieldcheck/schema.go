package fieldcheck

import (
	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

// Input identifiers of the customer form.
const (
	FieldName       = "nombre"
	FieldEmail      = "email"
	FieldPhone      = "telefono"
	FieldNationalID = "nif"
	FieldPlate      = "matricula"
	FieldCompanyTax = "cif"
)

// nameMaxLen bounds the customer name.
const nameMaxLen = 100

// FormField describes one input of the form.
type FormField struct {
	ID          string
	Label       string
	Type        string // input type attribute
	Placeholder string
	Required    bool
	Kind        field.Kind // zero when the field is not live-checked
	Tracked     bool
}

// Schema is an ordered list of form fields.
type Schema []FormField

// DefaultFields is the customer form in document order. The company tax code
// is optional and only checked on submission.
var DefaultFields = []FormField{
	{ID: FieldName, Label: "Nombre", Type: "text", Required: true},
	{ID: FieldEmail, Label: "Email", Type: field.InputTypeEmail, Placeholder: "nombre@ejemplo.es"},
	{ID: FieldPhone, Label: "Teléfono", Type: field.InputTypeTel, Placeholder: "612 34 56 78"},
	{ID: FieldNationalID, Label: "DNI / NIE", Type: "text", Placeholder: "12345678Z"},
	{ID: FieldPlate, Label: "Matrícula", Type: "text", Placeholder: "1234 BCD"},
	{ID: FieldCompanyTax, Label: "CIF (opcional)", Type: "text", Placeholder: "B12345674"},
}

// NewSchema classifies fields with cl. Whether a field is live-checked is
// decided the same way the browser-side coordinator decides it.
func NewSchema(cl field.Classifier, fields ...FormField) Schema {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	s := make(Schema, 0, len(fields))
	for _, f := range fields {
		f.Kind, f.Tracked = cl.Classify(field.Descriptor{Tag: "input", Type: f.Type, ID: f.ID})
		s = append(s, f)
	}
	return s
}

// Lookup finds a field by id.
func (s Schema) Lookup(id string) (FormField, bool) {
	for _, f := range s {
		if f.ID == id {
			return f, true
		}
	}
	return FormField{}, false
}

// Tracked returns the live-checked fields in document order.
func (s Schema) Tracked() []FormField {
	var out []FormField
	for _, f := range s {
		if f.Tracked {
			out = append(out, f)
		}
	}
	return out
}
