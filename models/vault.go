package models

import "time"

// Vault is a user-owned container for a single client-side-encrypted
// secret. The server never inspects or decrypts the payload: Name,
// EncryptedSecret and Salt are stored and returned as opaque strings.
type Vault struct {
	// VaultID is the unique identifier of the vault, generated on creation.
	VaultID string `json:"vaultId"`

	// UserID is the identifier of the owning user. Every read, update
	// and delete must verify it against the caller's identity. The
	// owner never changes after creation.
	UserID string `json:"userId"`

	// Name is the user-facing display name. Opaque to the server,
	// may be empty or client-side encrypted.
	Name string `json:"name"`

	// EncryptedSecret is the ciphertext blob produced by the client.
	EncryptedSecret string `json:"encryptedSecret"`

	// Salt is the client-supplied salt used for client-side key
	// derivation. Unrelated to the password salt on User.
	Salt string `json:"salt"`

	// CreatedAt is the timestamp when the vault was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every successful update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Vault model.
func (v Vault) TableName() string {
	return "vaults"
}

// VaultUpdate describes a partial vault mutation. Nil fields are left
// untouched; non-nil fields overwrite the stored value, including with
// an empty string.
type VaultUpdate struct {
	Name            *string `json:"name"`
	EncryptedSecret *string `json:"encryptedSecret"`
	Salt            *string `json:"salt"`
}

// Empty reports whether the update carries no fields at all.
// An empty update still refreshes UpdatedAt.
func (u VaultUpdate) Empty() bool {
	return u.Name == nil && u.EncryptedSecret == nil && u.Salt == nil
}

// Apply merges the update into v, returning the merged record.
// UpdatedAt is deliberately not touched here; the caller stamps it.
func (u VaultUpdate) Apply(v Vault) Vault {
	if u.Name != nil {
		v.Name = *u.Name
	}
	if u.EncryptedSecret != nil {
		v.EncryptedSecret = *u.EncryptedSecret
	}
	if u.Salt != nil {
		v.Salt = *u.Salt
	}
	return v
}
