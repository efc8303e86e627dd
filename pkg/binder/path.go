package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path binds router path parameters into fields tagged `path:"name"`.
// The extractor is router specific, e.g. chi.URLParam.
//
//	type ValidateRequest struct {
//		Field string `path:"field"`
//	}
//
//	r.Post("/validate/{field}", handler.Wrap(validate,
//		handler.WithBinders[handler.Context, ValidateRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	if extractor == nil {
		panic("binder.Path: nil extractor")
	}
	return func(r *http.Request, v any) error {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("%w: %w", ErrFailedToParsePath, ErrInvalidTarget)
		}

		values := make(map[string][]string)
		rt := rv.Elem().Type()
		for i := range rt.NumField() {
			name, ok := fieldName(rt.Field(i), "path")
			if !ok {
				continue
			}
			if val := extractor(r, name); val != "" {
				values[name] = []string{val}
			}
		}

		return bindToStruct(v, "path", values, ErrFailedToParsePath)
	}
}
