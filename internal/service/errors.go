package service

import "errors"

// Validation error kinds surfaced to callers. Handlers map these to 400
// responses; every other failure is an internal error.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidLimit      = errors.New("invalid limit")
)
