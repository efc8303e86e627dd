package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMalformedNumber is reported by the checksum helpers when a numeric
	// segment contains anything but ASCII digits.
	ErrMalformedNumber = errors.New("malformed numeric segment")
)
