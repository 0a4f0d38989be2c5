package service

import (
	"context"
	"fmt"
	"time"

	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/internal/store"
	"github.com/zerovault/zero-vault/internal/utils"
	"github.com/zerovault/zero-vault/models"
)

// vaultService is the concrete implementation of VaultService. It owns the
// existence and ownership checks; the repository below it operates on vault
// ids alone.
type vaultService struct {
	vaultRepository store.VaultRepository
	uuid            *utils.UUIDGenerator
	logger          *logger.Logger
}

// NewVaultService constructs a VaultService over the given repository.
func NewVaultService(vaultRepository store.VaultRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		uuid:            utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// List returns every vault owned by the caller.
func (v *vaultService) List(ctx context.Context, userID string) ([]models.Vault, error) {
	log := logger.FromContext(ctx)

	vaults, err := v.vaultRepository.ListVaults(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("listing vaults failed")
		return nil, fmt.Errorf("listing vaults failed: %w", err)
	}

	return vaults, nil
}

// Create stores a new vault owned by the caller. All payload fields are
// opaque pass-through values; no validation is applied, empty strings
// included.
func (v *vaultService) Create(ctx context.Context, userID string, req models.CreateVaultRequest) (models.Vault, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	vault := models.Vault{
		VaultID:         v.uuid.Generate(),
		UserID:          userID,
		Name:            req.Name,
		EncryptedSecret: req.EncryptedSecret,
		Salt:            req.Salt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := v.vaultRepository.CreateVault(ctx, vault)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("vault creation ended with error")
		return models.Vault{}, fmt.Errorf("vault creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns the vault after verifying it exists and belongs to the
// caller. Existence is checked first: a caller probing someone else's
// vault id learns it exists (403), while a random id yields 404. That
// ordering is part of the API contract.
func (v *vaultService) Get(ctx context.Context, userID, vaultID string) (models.Vault, error) {
	vault, err := v.ownedVault(ctx, userID, vaultID)
	if err != nil {
		return models.Vault{}, err
	}

	return vault, nil
}

// Update applies the partial mutation after the same existence and
// ownership checks as Get. The returned record is the in-memory merge of
// the stored row and the update; the persisted row is not re-read.
func (v *vaultService) Update(ctx context.Context, userID, vaultID string, update models.VaultUpdate) (models.Vault, error) {
	log := logger.FromContext(ctx)

	vault, err := v.ownedVault(ctx, userID, vaultID)
	if err != nil {
		return models.Vault{}, err
	}

	now := time.Now().UTC()
	if err := v.vaultRepository.UpdateVault(ctx, vaultID, update, now); err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("vault update ended with error")
		return models.Vault{}, fmt.Errorf("vault update ended with error: %w", err)
	}

	merged := update.Apply(vault)
	merged.UpdatedAt = now

	return merged, nil
}

// Delete removes the vault after the same existence and ownership checks
// as Get.
func (v *vaultService) Delete(ctx context.Context, userID, vaultID string) error {
	log := logger.FromContext(ctx)

	if _, err := v.ownedVault(ctx, userID, vaultID); err != nil {
		return err
	}

	if err := v.vaultRepository.DeleteVault(ctx, vaultID); err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("vault deletion ended with error")
		return fmt.Errorf("vault deletion ended with error: %w", err)
	}

	return nil
}

// ownedVault fetches the vault and enforces the ownership invariant.
// Returns store.ErrVaultNotFound when the id is unknown and
// ErrNotVaultOwner when the record belongs to a different user.
func (v *vaultService) ownedVault(ctx context.Context, userID, vaultID string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	vault, err := v.vaultRepository.GetVault(ctx, vaultID)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("vault lookup failed")
		return models.Vault{}, err
	}

	if vault.UserID != userID {
		log.Error().
			Str("vault_id", vaultID).
			Str("owner_id", vault.UserID).
			Str("caller_id", userID).
			Msg("caller is not the vault owner")
		return models.Vault{}, ErrNotVaultOwner
	}

	return vault, nil
}
