// Package fieldcheck serves a customer form whose fields are checked while
// the user types.
//
// The page is rendered with datastar attributes: tracked inputs post their
// value to /validate/{field} after a debounce and on blur, and the service
// answers with an SSE patch of the field's message element plus a signal
// patch with the field's validity. /submit re-checks the whole form, so the
// browser-side checks are a convenience, never the gate.
//
//	svc := fieldcheck.NewService(cfg.Check, fieldcheck.WithLogger(log))
//	r.Mount("/", svc.Handle())
package fieldcheck
