package member

import "errors"

// Repository-level errors
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidID      = errors.New("invalid member id")
)

// Service-level errors
var (
	// ErrValidation wraps create-side validation failures. Writes are
	// strict; read filters stay permissive and never raise this.
	ErrValidation = errors.New("validation failed")
)
