package models

import "time"

// Request and response bodies exchanged on the HTTP surface. Field
// names follow the wire format consumed by the ZeroVault frontend
// (camelCase), so these types are kept separate from the persistence
// models above even where they overlap.

// CredentialsRequest is the body of /auth/register and /auth/login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is returned with 201 on successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginResponse is returned with 200 on successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// MessageResponse carries a human-readable confirmation, e.g. on logout.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateVaultRequest is the body of POST /vaults. All fields are
// pass-through: empty strings are stored as-is.
type CreateVaultRequest struct {
	Name            string `json:"name"`
	EncryptedSecret string `json:"encryptedSecret"`
	Salt            string `json:"salt"`
}

// VaultResponse wraps a single vault record.
type VaultResponse struct {
	Vault Vault `json:"vault"`
}

// VaultListResponse wraps the caller's full vault collection.
type VaultListResponse struct {
	Vaults []Vault `json:"vaults"`
}

// ErrorResponse is the uniform error body. Details is populated only
// for internal server errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
