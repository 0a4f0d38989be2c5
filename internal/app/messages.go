// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ZeroVault Authors

// Package app contains shared application-layer constants used across the
// ZeroVault server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API. Clients match
// on some of them, so the exact spelling is part of the wire contract.
package app

const (
	// MsgUserCreated confirms a successful registration.
	MsgUserCreated = "User created successfully"

	// MsgLoggedOut confirms a successful (or repeated) logout.
	MsgLoggedOut = "Logged out successfully"

	// MsgEmailPasswordRequired is returned when a credentials payload is
	// missing either field or could not be decoded at all.
	MsgEmailPasswordRequired = "Email and password required"

	// MsgUserAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgUserAlreadyExists = "User already exists"

	// MsgInvalidCredentials is returned when the supplied email/password
	// combination does not match an existing account. Unknown emails and
	// wrong passwords produce the same message.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUnauthorized is returned when a protected route is called without
	// a usable bearer token.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidOrExpiredSession is returned when a bearer token is present
	// but no live session backs it.
	MsgInvalidOrExpiredSession = "Invalid or expired session"

	// MsgVaultNotFound is returned when a read, update, or delete targets
	// a vault that does not exist.
	MsgVaultNotFound = "Vault not found"

	// MsgForbidden is returned when the authenticated user attempts to
	// access a vault that belongs to a different user.
	MsgForbidden = "Forbidden"

	// MsgNotFound is returned for any route or method the API does not
	// serve.
	MsgNotFound = "Not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
