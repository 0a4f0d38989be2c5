package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/zerovault/zero-vault/models"
)

const (
	createUser = `INSERT INTO users (user_id, email, password_hash, salt, created_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, password_hash, salt, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, salt, created_at
    FROM users
    WHERE email = $1;`

	createSession = `INSERT INTO sessions (session_token, user_id, email, created_at, expires_at)
    VALUES ($1, $2, $3, $4, $5);`

	getSession = `SELECT session_token, user_id, email, created_at, expires_at
    FROM sessions
    WHERE session_token = $1;`

	deleteSession = `DELETE FROM sessions
    WHERE session_token = $1;`

	createVault = `INSERT INTO vaults (vault_id, user_id, name, encrypted_secret, salt, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING vault_id, user_id, name, encrypted_secret, salt, created_at, updated_at;`

	getVault = `SELECT vault_id, user_id, name, encrypted_secret, salt, created_at, updated_at
    FROM vaults
    WHERE vault_id = $1;`

	deleteVault = `DELETE FROM vaults
    WHERE vault_id = $1;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListVaultsQuery builds the SELECT for all vaults owned by userID.
func buildListVaultsQuery(userID string) (string, []any, error) {
	return psql.
		Select("vault_id", "user_id", "name", "encrypted_secret", "salt", "created_at", "updated_at").
		From("vaults").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateVaultQuery builds the partial UPDATE for a vault. Only the
// non-nil fields of update contribute SET clauses; updated_at is always
// refreshed, so an empty update still produces a valid statement.
func buildUpdateVaultQuery(vaultID string, update models.VaultUpdate, updatedAt time.Time) (string, []any, error) {
	builder := psql.
		Update("vaults").
		Set("updated_at", updatedAt)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.EncryptedSecret != nil {
		builder = builder.Set("encrypted_secret", *update.EncryptedSecret)
	}
	if update.Salt != nil {
		builder = builder.Set("salt", *update.Salt)
	}

	return builder.Where(sq.Eq{"vault_id": vaultID}).ToSql()
}
