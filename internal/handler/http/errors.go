package http

import "errors"

var (
	ErrEmptyAuthorizationHeader   = errors.New("empty Authorization header")
	ErrInvalidAuthorizationScheme = errors.New("authorization scheme is not Bearer")
	ErrEmptySessionToken          = errors.New("empty session token")
)
