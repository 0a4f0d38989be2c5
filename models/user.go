package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, generated at registration.
	UserID string `json:"userId"`

	// Email is the unique, lowercased and trimmed user email.
	// It is the login identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the PBKDF2-derived hash of the user's password,
	// hex encoded. This value MUST be a derived value, never plaintext.
	PasswordHash string `json:"-"`

	// Salt is the per-user random salt mixed into the password KDF,
	// hex encoded. Unrelated to the client-supplied vault salt.
	Salt string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
