package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required request field
	// (email or password) is missing or empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any login failure. The message
	// is deliberately identical whether the email is unknown or the
	// password is wrong, so callers cannot probe for account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotVaultOwner is returned when an authenticated caller addresses
	// a vault that exists but belongs to a different user.
	ErrNotVaultOwner = errors.New("vault belongs to a different user")
)
