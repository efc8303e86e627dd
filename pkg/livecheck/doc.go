// Package livecheck validates form fields as the user edits them.
//
// A Coordinator attaches to a dom.Document with three capture-phase listeners
// on the document root. Input events schedule a debounced evaluation per
// field, blur evaluates at once, and submit evaluates every tracked field of
// the form and vetoes the submission if any of them is invalid.
//
//	c := livecheck.New(livecheck.WithDelay(300 * time.Millisecond))
//	detach, err := c.Attach(doc)
//	if err != nil {
//		return err
//	}
//	defer detach()
//
// Timer callbacks run through Document.Do, so evaluations never overlap with
// event dispatch. Tests swap the wall clock for a ManualClock:
//
//	clock := livecheck.NewManualClock(time.Now())
//	c := livecheck.New(livecheck.WithClock(clock))
//	// ... doc.Input(el, "600123456")
//	clock.Advance(livecheck.DefaultDelay)
//
// Verdicts are rendered by a Reporter. DOMReporter toggles the "error" and
// "success" classes and keeps a div.field-error message next to the field.
package livecheck
