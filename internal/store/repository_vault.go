package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/models"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. It executes all vault CRUD operations against the
// "vaults" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, vault_id, etc.).
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateVault persists a new vault record and returns the canonical
// database representation via the RETURNING clause.
func (p *vaultRepository) CreateVault(ctx context.Context, vault models.Vault) (models.Vault, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createVault,
		vault.VaultID,
		vault.UserID,
		vault.Name,
		vault.EncryptedSecret,
		vault.Salt,
		vault.CreatedAt,
		vault.UpdatedAt,
	)

	var created models.Vault
	if err := row.Scan(
		&created.VaultID,
		&created.UserID,
		&created.Name,
		&created.EncryptedSecret,
		&created.Salt,
		&created.CreatedAt,
		&created.UpdatedAt,
	); err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.CreateVault").
			Str("user_id", vault.UserID).
			Msg("failed to insert vault")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetVault retrieves a vault by id regardless of owner. The ownership
// decision belongs to the service layer, which needs to distinguish
// "absent" from "owned by someone else".
func (p *vaultRepository) GetVault(ctx context.Context, vaultID string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	var vault models.Vault
	row := p.DB.QueryRowContext(ctx, getVault, vaultID)

	if err := row.Scan(
		&vault.VaultID,
		&vault.UserID,
		&vault.Name,
		&vault.EncryptedSecret,
		&vault.Salt,
		&vault.CreatedAt,
		&vault.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vault{}, ErrVaultNotFound
		}

		log.Err(err).
			Str("func", "*vaultRepository.GetVault").
			Str("vault_id", vaultID).
			Msg("failed to scan vault row")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return vault, nil
}

// ListVaults retrieves every vault owned by the given user. Returns an
// empty slice when the user owns none.
func (p *vaultRepository) ListVaults(ctx context.Context, userID string) ([]models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVaultsQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.ListVaults").
			Str("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.ListVaults").
			Str("user_id", userID).
			Msg("failed to execute query for listing vaults")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Vault, 0, 16)

	for rows.Next() {
		var item models.Vault

		scanErr := rows.Scan(
			&item.VaultID,
			&item.UserID,
			&item.Name,
			&item.EncryptedSecret,
			&item.Salt,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*vaultRepository.ListVaults").
				Str("user_id", userID).
				Msg("failed to scan vault row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*vaultRepository.ListVaults").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdateVault applies the non-nil fields of update to the stored vault and
// refreshes updated_at. Returns [ErrVaultNotFound] when no row matched the
// vault id.
func (p *vaultRepository) UpdateVault(ctx context.Context, vaultID string, update models.VaultUpdate, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateVaultQuery(vaultID, update, updatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.UpdateVault").
			Str("vault_id", vaultID).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.UpdateVault").
			Str("vault_id", vaultID).
			Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVaultNotFound
	}

	return nil
}

// DeleteVault removes the vault with the given id. Returns
// [ErrVaultNotFound] when no row matched.
func (p *vaultRepository) DeleteVault(ctx context.Context, vaultID string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteVault, vaultID)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.DeleteVault").
			Str("vault_id", vaultID).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVaultNotFound
	}

	return nil
}
