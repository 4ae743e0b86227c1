package services

import "errors"

// Error kinds surfaced to controllers. Controllers map these with
// errors.Is: ErrValidation -> 400, ErrNotFound -> 404, ErrUpstream -> 502,
// anything else -> 500.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrUpstream   = errors.New("upstream service unavailable")
)
