package livecheck

import "errors"

var (
	// ErrAlreadyAttached is returned when Attach is called on a coordinator that is attached.
	ErrAlreadyAttached = errors.New("coordinator already attached to a document")

	// ErrNilDocument is returned when Attach receives a nil document.
	ErrNilDocument = errors.New("nil document")
)
