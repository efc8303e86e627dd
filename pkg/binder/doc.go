// Package binder populates request structs from form and JSON bodies.
//
// Binders have the signature func(*http.Request, any) error and return
// ErrBinderNotApplicable when the request has a content type they do not
// handle, so several can be chained:
//
//	handler.WithBinders[handler.Context, SubmitRequest](binder.Form(), binder.JSON())
//
// Form reads `form:"name"` tags; JSON uses encoding/json tags in strict mode.
// NUL bytes are stripped from every bound string.
package binder
