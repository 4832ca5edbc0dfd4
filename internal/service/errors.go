package service

import "errors"

// Error kinds. Services wrap them with fmt.Errorf("%w: ...") and handlers map
// them to status codes with errors.Is.
var (
	ErrValidation   = errors.New("invalid request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("not allowed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("unavailable")
)
