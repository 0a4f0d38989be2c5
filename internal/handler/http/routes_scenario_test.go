// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ZeroVault Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerovault/zero-vault/internal/config"
	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/internal/service"
	"github.com/zerovault/zero-vault/internal/store"
	"github.com/zerovault/zero-vault/models"
)

// In-memory repositories backing the full-stack scenario below. Unlike the
// per-handler mocks they keep real state, so the router runs against live
// service implementations end to end.

type memUserRepo struct {
	byEmail map[string]models.User
}

func (m *memUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if _, taken := m.byEmail[user.Email]; taken {
		return models.User{}, store.ErrEmailAlreadyExists
	}
	m.byEmail[user.Email] = user
	return user, nil
}

func (m *memUserRepo) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	user, found := m.byEmail[email]
	if !found {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

type memSessionRepo struct {
	byToken map[string]models.Session
}

func (m *memSessionRepo) CreateSession(_ context.Context, session models.Session) error {
	m.byToken[session.Token] = session
	return nil
}

func (m *memSessionRepo) GetSession(_ context.Context, token string) (models.Session, error) {
	session, found := m.byToken[token]
	if !found {
		return models.Session{}, store.ErrNoSessionWasFound
	}
	return session, nil
}

func (m *memSessionRepo) DeleteSession(_ context.Context, token string) error {
	delete(m.byToken, token)
	return nil
}

type memVaultRepo struct {
	byID map[string]models.Vault
}

func (m *memVaultRepo) CreateVault(_ context.Context, vault models.Vault) (models.Vault, error) {
	m.byID[vault.VaultID] = vault
	return vault, nil
}

func (m *memVaultRepo) GetVault(_ context.Context, vaultID string) (models.Vault, error) {
	vault, found := m.byID[vaultID]
	if !found {
		return models.Vault{}, store.ErrVaultNotFound
	}
	return vault, nil
}

func (m *memVaultRepo) ListVaults(_ context.Context, userID string) ([]models.Vault, error) {
	vaults := make([]models.Vault, 0)
	for _, vault := range m.byID {
		if vault.UserID == userID {
			vaults = append(vaults, vault)
		}
	}
	return vaults, nil
}

func (m *memVaultRepo) UpdateVault(_ context.Context, vaultID string, update models.VaultUpdate, updatedAt time.Time) error {
	vault, found := m.byID[vaultID]
	if !found {
		return store.ErrVaultNotFound
	}
	vault = update.Apply(vault)
	vault.UpdatedAt = updatedAt
	m.byID[vaultID] = vault
	return nil
}

func (m *memVaultRepo) DeleteVault(_ context.Context, vaultID string) error {
	if _, found := m.byID[vaultID]; !found {
		return store.ErrVaultNotFound
	}
	delete(m.byID, vaultID)
	return nil
}

// newScenarioRouter wires real services over the in-memory repositories.
func newScenarioRouter() http.Handler {
	storages := &store.Storages{
		UserRepository:    &memUserRepo{byEmail: map[string]models.User{}},
		SessionRepository: &memSessionRepo{byToken: map[string]models.Session{}},
		VaultRepository:   &memVaultRepo{byID: map[string]models.Vault{}},
	}
	cfg := &config.StructuredConfig{
		App: config.App{
			SessionDuration: 24 * time.Hour,
			KDFIterations:   1000,
		},
	}
	services := service.NewServices(storages, cfg, logger.Nop())
	return NewHandler(services, logger.Nop()).Init()
}

func doJSON(t *testing.T, router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// The whole account lifecycle through the real router and services:
// register, login, create a vault, read it, delete it, read again.
func TestRouter_FullAccountLifecycle(t *testing.T) {
	router := newScenarioRouter()

	// register
	rr := doJSON(t, router, http.MethodPost, "/auth/register", "", `{"email":"alice@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var registered models.RegisterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &registered))
	require.NotEmpty(t, registered.UserID)

	// duplicate registration conflicts
	rr = doJSON(t, router, http.MethodPost, "/auth/register", "", `{"email":"alice@example.com","password":"other"}`)
	require.Equal(t, http.StatusConflict, rr.Code)

	// login
	rr = doJSON(t, router, http.MethodPost, "/auth/login", "", `{"email":"Alice@Example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, registered.UserID, login.UserID)

	// wrong password stays uniform
	rr = doJSON(t, router, http.MethodPost, "/auth/login", "", `{"email":"alice@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// create a vault
	rr = doJSON(t, router, http.MethodPost, "/vaults", login.Token, `{"name":"personal","encryptedSecret":"ciphertext","salt":"client-salt"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.VaultResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotEmpty(t, created.Vault.VaultID)
	assert.Equal(t, registered.UserID, created.Vault.UserID)

	// list shows it
	rr = doJSON(t, router, http.MethodGet, "/vaults", login.Token, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var listed models.VaultListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed.Vaults, 1)

	// partial update touches only the supplied field
	rr = doJSON(t, router, http.MethodPut, "/vaults/"+created.Vault.VaultID, login.Token, `{"name":"renamed"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var updated models.VaultResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "renamed", updated.Vault.Name)
	assert.Equal(t, "ciphertext", updated.Vault.EncryptedSecret)

	// read it back
	rr = doJSON(t, router, http.MethodGet, "/vaults/"+created.Vault.VaultID, login.Token, "")
	require.Equal(t, http.StatusOK, rr.Code)

	// delete answers an empty 204 that still carries the fixed headers
	rr = doJSON(t, router, http.MethodDelete, "/vaults/"+created.Vault.VaultID, login.Token, "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	// reading a deleted vault answers 404
	rr = doJSON(t, router, http.MethodGet, "/vaults/"+created.Vault.VaultID, login.Token, "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	// logout revokes the session
	rr = doJSON(t, router, http.MethodPost, "/auth/logout", login.Token, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/vaults", login.Token, "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

// A second account must never see or mutate the first account's vault.
func TestRouter_CrossUserIsolation(t *testing.T) {
	router := newScenarioRouter()

	register := func(email string) string {
		rr := doJSON(t, router, http.MethodPost, "/auth/register", "", `{"email":"`+email+`","password":"s3cret"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = doJSON(t, router, http.MethodPost, "/auth/login", "", `{"email":"`+email+`","password":"s3cret"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var login models.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &login))
		return login.Token
	}

	aliceToken := register("alice@example.com")
	bobToken := register("bob@example.com")

	rr := doJSON(t, router, http.MethodPost, "/vaults", aliceToken, `{"name":"personal","encryptedSecret":"ciphertext"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.VaultResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	// existing but foreign vault answers 403, missing vault 404
	rr = doJSON(t, router, http.MethodGet, "/vaults/"+created.Vault.VaultID, bobToken, "")
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/vaults/"+created.Vault.VaultID, bobToken, "")
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/vaults/missing", bobToken, "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	// Bob's listing stays empty
	rr = doJSON(t, router, http.MethodGet, "/vaults", bobToken, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"vaults":[]}`, rr.Body.String())
}
