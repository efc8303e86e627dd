package binder

import (
	"mime"
	"net/http"
	"strings"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"
	MIMEMultipartForm   = "multipart/form-data"
)

// mediaType returns the lower-cased media type of r without parameters.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
	}
	return mt
}

// cleanString drops NUL bytes, which no form field legitimately carries.
func cleanString(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
