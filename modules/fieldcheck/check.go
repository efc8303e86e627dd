package fieldcheck

import (
	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/sanitizer"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// SubmitRequest carries a form post or the datastar signals of the form.
type SubmitRequest struct {
	Name       string `form:"nombre" json:"nombre"`
	Email      string `form:"email" json:"email"`
	Phone      string `form:"telefono" json:"telefono"`
	NationalID string `form:"nif" json:"nif"`
	Plate      string `form:"matricula" json:"matricula"`
	CompanyTax string `form:"cif" json:"cif"`
}

// Values returns the submitted values keyed by field id.
func (r SubmitRequest) Values() map[string]string {
	return map[string]string{
		FieldName:       r.Name,
		FieldEmail:      r.Email,
		FieldPhone:      r.Phone,
		FieldNationalID: r.NationalID,
		FieldPlate:      r.Plate,
		FieldCompanyTax: r.CompanyTax,
	}
}

// Check re-validates a whole submission and returns the normalised values.
// Blank optional fields pass; on failure the error is validator.ValidationErrors
// ordered like the schema.
func (s Schema) Check(values map[string]string) (map[string]string, error) {
	normalized := make(map[string]string, len(s))
	rules := make([]validator.Rule, 0, len(s)+1)

	for _, f := range s {
		raw := values[f.ID]
		blank := sanitizer.Trim(raw) == ""

		var value string
		switch {
		case f.Tracked:
			value = field.Normalize(f.Kind, raw)
		case f.ID == FieldCompanyTax:
			value = sanitizer.NormalizeNationalID(raw)
		default:
			value = sanitizer.Trim(raw)
		}
		normalized[f.ID] = value

		if f.Required {
			rules = append(rules, validator.Required(f.ID, raw))
		}

		switch {
		case f.Tracked:
			rules = append(rules, validator.When(!blank, field.Rule(f.Kind, f.ID, value)))
		case f.ID == FieldCompanyTax:
			rules = append(rules, validator.When(!blank, validator.ValidCIF(f.ID, value)))
		case f.ID == FieldName:
			rules = append(rules, validator.MaxLen(f.ID, value, nameMaxLen))
		}
	}

	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}
	return normalized, nil
}
