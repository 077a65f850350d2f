package user

import "errors"

// Login errors, each mapped to a stable code and user-facing message by
// the handler.
var (
	ErrUserNotFound    = errors.New("no admin account found for this username")
	ErrWrongPassword   = errors.New("incorrect password")
	ErrInvalidEmail    = errors.New("invalid username format")
	ErrTooManyRequests = errors.New("too many failed login attempts")
	ErrMisconfigured   = errors.New("authentication is not configured")
)
