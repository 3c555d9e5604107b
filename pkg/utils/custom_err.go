package utils

import "errors"

var (
	ErrActivityNotFound   = errors.New("activity not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyAttending   = errors.New("already attending")
	ErrNotAttending       = errors.New("not attending")
	ErrHostCannotLeave    = errors.New("host cannot leave own activity")

	// Remote-call taxonomy used by the client layer: ErrRemoteUnavailable is
	// a transport failure (service unreachable), ErrServiceFailure is a
	// failure response from a reachable service.
	ErrRemoteUnavailable = errors.New("remote service unavailable")
	ErrServiceFailure    = errors.New("remote service error")
)
