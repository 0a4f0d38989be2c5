package service

import (
	"context"

	"github.com/zerovault/zero-vault/models"
)

// AuthService is the credential and session manager. It registers users,
// verifies login credentials, and controls the session token lifecycle.
type AuthService interface {
	// Register creates a new user account for the normalized email.
	// Returns ErrInvalidDataProvided if email or password is empty, or
	// store.ErrEmailAlreadyExists if the email is taken.
	Register(ctx context.Context, email, password string) (models.User, error)

	// Login verifies the credentials and issues a fresh session valid for
	// the configured duration. Returns ErrInvalidCredentials on any
	// mismatch, without revealing whether the email exists.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// ValidateSession resolves a bearer token to the owning user id.
	// Expired sessions are deleted on access. Any failure, including
	// storage faults, yields ok == false; validation never returns an
	// error to its caller.
	ValidateSession(ctx context.Context, token string) (userID string, ok bool)

	// Logout revokes the session for the given token. Revoking an absent
	// session is not an error.
	Logout(ctx context.Context, token string) error
}

// VaultService performs ownership-checked CRUD on vault records. Every
// method takes the caller's user id as resolved by AuthService and refuses
// to disclose or mutate records owned by anyone else.
type VaultService interface {
	// List returns all vaults owned by the caller.
	List(ctx context.Context, userID string) ([]models.Vault, error)

	// Create stores a new vault owned by the caller. Name, secret and
	// salt are opaque pass-through values; empty strings are accepted.
	Create(ctx context.Context, userID string, req models.CreateVaultRequest) (models.Vault, error)

	// Get returns the vault with the given id. Returns
	// store.ErrVaultNotFound if it does not exist, or ErrNotVaultOwner if
	// it belongs to a different user.
	Get(ctx context.Context, userID, vaultID string) (models.Vault, error)

	// Update applies a partial mutation to the vault after the same
	// existence and ownership checks as Get, refreshing UpdatedAt.
	Update(ctx context.Context, userID, vaultID string, update models.VaultUpdate) (models.Vault, error)

	// Delete removes the vault after the same existence and ownership
	// checks as Get.
	Delete(ctx context.Context, userID, vaultID string) error
}
