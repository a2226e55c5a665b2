package services

import "errors"

var (
	// ErrDuplicateUser is returned by Register when the username is taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials is returned by Login for an unknown user and for a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when a valid token targets another account.
	ErrUnauthorized = errors.New("unauthorized action")
)
