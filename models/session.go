package models

import "time"

// Session is an ephemeral authorization grant issued at login.
// The token itself acts as the primary key; possession of the token
// is the only proof of identity for protected requests.
type Session struct {
	// Token is the opaque random session token (hex encoded, 256 bits
	// of entropy). Returned to the client once at login.
	Token string `json:"token"`

	// UserID is the identifier of the user that owns the session.
	UserID string `json:"userId"`

	// Email is the owning user's email, denormalized into the session
	// so that login responses need no extra user lookup.
	Email string `json:"email"`

	// CreatedAt is the timestamp when the session was issued.
	CreatedAt time.Time `json:"createdAt"`

	// ExpiresAt is the instant after which the session is no longer
	// valid. Expired sessions are removed lazily on first access.
	ExpiresAt time.Time `json:"expiresAt"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session expiry lies before now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
