package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired session token")
	ErrNoSession          = errors.New("no active session")
)
