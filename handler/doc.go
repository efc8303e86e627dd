// Package handler turns typed handler functions into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a request value already populated by
// the configured binders, and returns a Response:
//
//	submit := handler.Wrap(
//		func(ctx handler.Context, req SubmitRequest) handler.Response {
//			if err := svc.Check(req); err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.JSON(req)
//		},
//		handler.WithBinders[handler.Context, SubmitRequest](binder.Form(), binder.JSON()),
//		handler.WithErrorHandler[handler.Context, SubmitRequest](errorHandler),
//	)
//
// Responses adapt to datastar: Templ and TemplMulti send SSE element patches
// when the request comes from a datastar action and plain HTML otherwise,
// WithSignals appends a signal patch. JSON and JSONError use a
// {data, meta, error} envelope; validator.ValidationErrors map to 422 with
// per-field details.
package handler
