package forum

import "errors"

// Sentinel error kinds for the forum domain. Services wrap these with
// context via fmt.Errorf and %w; the HTTP layer maps them to status codes
// with errors.Is. Anything that doesn't match one of these is treated as
// an internal failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("invalid input")
)
