package common

import "errors"

var (
	// ErrNotLoggedIn is returned by commands that need a stored session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrEmptyCredentials is returned when email or password is blank.
	ErrEmptyCredentials = errors.New("email and password are required")
)
