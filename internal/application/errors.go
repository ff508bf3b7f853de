package application

import "errors"

// Expected, recoverable outcomes. The HTTP layer maps each to a status code;
// anything outside this list is treated as an internal error.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotActivated       = errors.New("email not confirmed")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers expired, forged, unknown and wrong-kind tokens.
	// The workflow never tells the caller which of those it was.
	ErrInvalidToken = errors.New("invalid token")

	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("not allowed")
	ErrInvalidReference = errors.New("referenced resource does not exist")
	ErrNothingChanged   = errors.New("nothing was changed")
)
