package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/internal/store"
	"github.com/zerovault/zero-vault/models"
)

// mockVaultRepo implements store.VaultRepository for unit tests.
type mockVaultRepo struct {
	createVaultFn func(ctx context.Context, vault models.Vault) (models.Vault, error)
	getVaultFn    func(ctx context.Context, vaultID string) (models.Vault, error)
	listVaultsFn  func(ctx context.Context, userID string) ([]models.Vault, error)
	updateVaultFn func(ctx context.Context, vaultID string, update models.VaultUpdate, updatedAt time.Time) error
	deleteVaultFn func(ctx context.Context, vaultID string) error
}

func (m *mockVaultRepo) CreateVault(ctx context.Context, vault models.Vault) (models.Vault, error) {
	return m.createVaultFn(ctx, vault)
}

func (m *mockVaultRepo) GetVault(ctx context.Context, vaultID string) (models.Vault, error) {
	return m.getVaultFn(ctx, vaultID)
}

func (m *mockVaultRepo) ListVaults(ctx context.Context, userID string) ([]models.Vault, error) {
	return m.listVaultsFn(ctx, userID)
}

func (m *mockVaultRepo) UpdateVault(ctx context.Context, vaultID string, update models.VaultUpdate, updatedAt time.Time) error {
	return m.updateVaultFn(ctx, vaultID, update, updatedAt)
}

func (m *mockVaultRepo) DeleteVault(ctx context.Context, vaultID string) error {
	return m.deleteVaultFn(ctx, vaultID)
}

func ownedVaultFixture() models.Vault {
	now := time.Now().UTC().Add(-time.Hour)
	return models.Vault{
		VaultID:         "vault-1",
		UserID:          "user-a",
		Name:            "email",
		EncryptedSecret: "cipher",
		Salt:            "clientsalt",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func strPtr(s string) *string { return &s }

func TestVaultCreate_StampsIDAndTimestamps(t *testing.T) {
	var persisted models.Vault
	repo := &mockVaultRepo{
		createVaultFn: func(_ context.Context, vault models.Vault) (models.Vault, error) {
			persisted = vault
			return vault, nil
		},
	}
	svc := NewVaultService(repo, logger.Nop())

	created, err := svc.Create(context.Background(), "user-a", models.CreateVaultRequest{
		Name:            "email",
		EncryptedSecret: "cipher",
		Salt:            "clientsalt",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.VaultID)
	assert.Equal(t, "user-a", created.UserID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, persisted.VaultID, created.VaultID)
}

func TestVaultCreate_EmptyFieldsPassThrough(t *testing.T) {
	repo := &mockVaultRepo{
		createVaultFn: func(_ context.Context, vault models.Vault) (models.Vault, error) {
			return vault, nil
		},
	}
	svc := NewVaultService(repo, logger.Nop())

	created, err := svc.Create(context.Background(), "user-a", models.CreateVaultRequest{})
	require.NoError(t, err)
	assert.Empty(t, created.Name)
	assert.Empty(t, created.EncryptedSecret)
	assert.Empty(t, created.Salt)
}

func TestVaultList(t *testing.T) {
	repo := &mockVaultRepo{
		listVaultsFn: func(_ context.Context, userID string) ([]models.Vault, error) {
			require.Equal(t, "user-a", userID)
			return []models.Vault{ownedVaultFixture()}, nil
		},
	}
	svc := NewVaultService(repo, logger.Nop())

	vaults, err := svc.List(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Len(t, vaults, 1)
}

func TestVaultGet_OwnershipMatrix(t *testing.T) {
	repo := &mockVaultRepo{
		getVaultFn: func(_ context.Context, vaultID string) (models.Vault, error) {
			if vaultID != "vault-1" {
				return models.Vault{}, store.ErrVaultNotFound
			}
			return ownedVaultFixture(), nil
		},
	}
	svc := NewVaultService(repo, logger.Nop())

	t.Run("owner", func(t *testing.T) {
		vault, err := svc.Get(context.Background(), "user-a", "vault-1")
		require.NoError(t, err)
		assert.Equal(t, "vault-1", vault.VaultID)
	})

	t.Run("different user", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "user-b", "vault-1")
		assert.ErrorIs(t, err, ErrNotVaultOwner)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "user-a", "absent")
		assert.ErrorIs(t, err, store.ErrVaultNotFound)
	})
}

func TestVaultUpdate_PartialMerge(t *testing.T) {
	var gotUpdate models.VaultUpdate
	before := ownedVaultFixture()
	repo := &mockVaultRepo{
		getVaultFn: func(_ context.Context, _ string) (models.Vault, error) {
			return before, nil
		},
		updateVaultFn: func(_ context.Context, _ string, update models.VaultUpdate, _ time.Time) error {
			gotUpdate = update
			return nil
		},
	}
	svc := NewVaultService(repo, logger.Nop())
	merged, err := svc.Update(context.Background(), "user-a", "vault-1", models.VaultUpdate{Name: strPtr("x")})
	require.NoError(t, err)

	// only name and updatedAt change; the rest is untouched
	assert.Equal(t, "x", merged.Name)
	assert.Equal(t, before.EncryptedSecret, merged.EncryptedSecret)
	assert.Equal(t, before.Salt, merged.Salt)
	assert.True(t, merged.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, before.CreatedAt, merged.CreatedAt)

	require.NotNil(t, gotUpdate.Name)
	assert.Nil(t, gotUpdate.EncryptedSecret)
	assert.Nil(t, gotUpdate.Salt)
}

func TestVaultUpdate_NotOwner(t *testing.T) {
	updateCalled := false
	repo := &mockVaultRepo{
		getVaultFn: func(_ context.Context, _ string) (models.Vault, error) {
			return ownedVaultFixture(), nil
		},
		updateVaultFn: func(_ context.Context, _ string, _ models.VaultUpdate, _ time.Time) error {
			updateCalled = true
			return nil
		},
	}
	svc := NewVaultService(repo, logger.Nop())

	_, err := svc.Update(context.Background(), "user-b", "vault-1", models.VaultUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotVaultOwner)
	assert.False(t, updateCalled, "no mutation may happen for a non-owner")
}

func TestVaultDelete_Owner(t *testing.T) {
	deleted := ""
	repo := &mockVaultRepo{
		getVaultFn: func(_ context.Context, _ string) (models.Vault, error) {
			return ownedVaultFixture(), nil
		},
		deleteVaultFn: func(_ context.Context, vaultID string) error {
			deleted = vaultID
			return nil
		},
	}
	svc := NewVaultService(repo, logger.Nop())

	require.NoError(t, svc.Delete(context.Background(), "user-a", "vault-1"))
	assert.Equal(t, "vault-1", deleted)
}

func TestVaultDelete_NotOwnerAndNotFound(t *testing.T) {
	repo := &mockVaultRepo{
		getVaultFn: func(_ context.Context, vaultID string) (models.Vault, error) {
			if vaultID != "vault-1" {
				return models.Vault{}, store.ErrVaultNotFound
			}
			return ownedVaultFixture(), nil
		},
		deleteVaultFn: func(_ context.Context, _ string) error {
			t.Fatal("delete must not be reached")
			return nil
		},
	}
	svc := NewVaultService(repo, logger.Nop())

	err := svc.Delete(context.Background(), "user-b", "vault-1")
	assert.ErrorIs(t, err, ErrNotVaultOwner)

	err = svc.Delete(context.Background(), "user-a", "absent")
	assert.ErrorIs(t, err, store.ErrVaultNotFound)
}

func TestVaultList_StorageFault(t *testing.T) {
	repo := &mockVaultRepo{
		listVaultsFn: func(_ context.Context, _ string) ([]models.Vault, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewVaultService(repo, logger.Nop())

	_, err := svc.List(context.Background(), "user-a")
	require.Error(t, err)
}
