// Package field ties classification, normalisation and evaluation together
// for the four kinds of tracked form fields: e-mail, phone, national ID and
// vehicle plate.
//
// A Classifier maps an input's declared type or identifier to a Kind. Validate
// then normalises the raw text for that kind (see the sanitizer package) and
// dispatches to the matching validator rule with a closed switch:
//
//	kind, ok := field.Classify(field.Descriptor{Tag: "input", ID: "nif"})
//	if ok {
//	    res := field.Validate(kind, " x1234567l ")
//	    // res.Valid == true
//	}
//
// Blank input yields a skipped result: the engine has no opinion on it and it
// never blocks a submission.
package field
