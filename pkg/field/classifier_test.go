package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

func TestClassify_Defaults(t *testing.T) {
	tests := []struct {
		name    string
		desc    field.Descriptor
		kind    field.Kind
		tracked bool
	}{
		{name: "email type", desc: field.Descriptor{Tag: "input", Type: "email", ID: "contact"}, kind: field.KindEmail, tracked: true},
		{name: "tel type", desc: field.Descriptor{Tag: "INPUT", Type: "TEL"}, kind: field.KindPhone, tracked: true},
		{name: "nif id", desc: field.Descriptor{Tag: "input", Type: "text", ID: "nif"}, kind: field.KindNationalID, tracked: true},
		{name: "matricula id", desc: field.Descriptor{Tag: "input", ID: "matricula"}, kind: field.KindPlate, tracked: true},
		{name: "type wins over id", desc: field.Descriptor{Tag: "input", Type: "email", ID: "nif"}, kind: field.KindEmail, tracked: true},
		{name: "plain text", desc: field.Descriptor{Tag: "input", Type: "text", ID: "name"}},
		{name: "id is case sensitive", desc: field.Descriptor{Tag: "input", ID: "NIF"}},
		{name: "not an input", desc: field.Descriptor{Tag: "textarea", ID: "nif"}},
		{name: "empty descriptor", desc: field.Descriptor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := field.Classify(tt.desc)
			assert.Equal(t, tt.tracked, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestClassifier_CustomIdentifiers(t *testing.T) {
	c := field.Classifier{
		NationalIDFields: []string{"dni", "nie"},
		PlateFields:      []string{"plate"},
	}

	kind, ok := c.Classify(field.Descriptor{Tag: "input", ID: "nie"})
	assert.True(t, ok)
	assert.Equal(t, field.KindNationalID, kind)

	kind, ok = c.Classify(field.Descriptor{Tag: "input", ID: "plate"})
	assert.True(t, ok)
	assert.Equal(t, field.KindPlate, kind)

	_, ok = c.Classify(field.Descriptor{Tag: "input", ID: "nif"})
	assert.False(t, ok, "custom sets replace the defaults")

	kind, ok = c.Classify(field.Descriptor{Tag: "input", Type: "tel", ID: "plate"})
	assert.True(t, ok)
	assert.Equal(t, field.KindPhone, kind)
}
