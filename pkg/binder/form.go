package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory bounds the in-memory part of multipart forms.
const DefaultMaxMemory = 1 << 20

// Form binds url-encoded and multipart form values into fields tagged `form:"name"`.
// Other content types yield ErrBinderNotApplicable.
//
//	type SubmitRequest struct {
//		Email string `form:"email" json:"email"`
//		Phone string `form:"telefono" json:"telefono"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		var values map[string][]string

		switch mediaType(r) {
		case MIMEApplicationForm:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm
		case MIMEMultipartForm:
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value
		default:
			return ErrBinderNotApplicable
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
