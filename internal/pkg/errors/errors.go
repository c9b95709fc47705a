package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks access to a resource the caller does not own.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadyEnrolled marks a duplicate enrollment for the same user and level.
	ErrAlreadyEnrolled = errors.New("already enrolled")
	// ErrUnavailable marks a transient backend failure; the whole operation
	// rolled back and is safe to retry.
	ErrUnavailable = errors.New("service unavailable")
)
