package store

import (
	"context"
	"time"

	"github.com/zerovault/zero-vault/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns the persisted record.
	// Returns ErrEmailAlreadyExists if the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by normalized email.
	// Returns ErrNoUserWasFound if no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SessionRepository persists bearer sessions keyed by token.
type SessionRepository interface {
	// CreateSession inserts a new session record.
	CreateSession(ctx context.Context, session models.Session) error

	// GetSession looks up a session by its token.
	// Returns ErrNoSessionWasFound if no such session exists.
	GetSession(ctx context.Context, token string) (models.Session, error)

	// DeleteSession removes the session with the given token. Deleting a
	// nonexistent session is not an error.
	DeleteSession(ctx context.Context, token string) error
}

// VaultRepository persists vault records. Ownership enforcement lives in the
// service layer; the repository operates on vault ids alone.
type VaultRepository interface {
	// CreateVault inserts a new vault and returns the persisted record.
	CreateVault(ctx context.Context, vault models.Vault) (models.Vault, error)

	// GetVault looks up a vault by id regardless of owner.
	// Returns ErrVaultNotFound if no such vault exists.
	GetVault(ctx context.Context, vaultID string) (models.Vault, error)

	// ListVaults returns all vaults owned by the given user, in the order
	// the store naturally returns them.
	ListVaults(ctx context.Context, userID string) ([]models.Vault, error)

	// UpdateVault applies the non-nil fields of update to the vault and
	// stamps updated_at. Returns ErrVaultNotFound if no row was affected.
	UpdateVault(ctx context.Context, vaultID string, update models.VaultUpdate, updatedAt time.Time) error

	// DeleteVault removes the vault with the given id.
	// Returns ErrVaultNotFound if no row was affected.
	DeleteVault(ctx context.Context, vaultID string) error
}
