package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zerovault/zero-vault/internal/app"
	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/internal/utils"
	"github.com/zerovault/zero-vault/models"
)

func (h *Handler) listVaults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	vaults, err := h.services.VaultService.List(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing vaults failed")
		writeInternalError(w, err)
		return
	}

	utils.WriteJSON(w, models.VaultListResponse{Vaults: vaults}, http.StatusOK)
}

func (h *Handler) createVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	// all fields are optional pass-through values, so a malformed body
	// degrades to an empty vault rather than an error
	var req models.CreateVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("malformed JSON body")
	}

	vault, err := h.services.VaultService.Create(ctx, userID, req)
	if err != nil {
		log.Err(err).Msg("creating vault failed")
		writeInternalError(w, err)
		return
	}

	log.Debug().Str("vault_id", vault.VaultID).Msg("vault created")

	utils.WriteJSON(w, models.VaultResponse{Vault: vault}, http.StatusCreated)
}

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	vault, err := h.services.VaultService.Get(ctx, userID, chi.URLParam(r, "vaultID"))
	if err != nil {
		h.writeVaultError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.VaultResponse{Vault: vault}, http.StatusOK)
}

func (h *Handler) updateVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	var update models.VaultUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Debug().Err(err).Msg("malformed JSON body")
	}

	vault, err := h.services.VaultService.Update(ctx, userID, chi.URLParam(r, "vaultID"), update)
	if err != nil {
		h.writeVaultError(w, r, err)
		return
	}

	log.Debug().Str("vault_id", vault.VaultID).Msg("vault updated")

	utils.WriteJSON(w, models.VaultResponse{Vault: vault}, http.StatusOK)
}

func (h *Handler) deleteVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	vaultID := chi.URLParam(r, "vaultID")
	if err := h.services.VaultService.Delete(ctx, userID, vaultID); err != nil {
		h.writeVaultError(w, r, err)
		return
	}

	log.Debug().Str("vault_id", vaultID).Msg("vault deleted")

	w.WriteHeader(http.StatusNoContent)
}

// writeVaultError maps the errors shared by the single-vault endpoints.
// Existence is checked before ownership, so a vault belonging to someone
// else still answers 403, not 404.
func (h *Handler) writeVaultError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch status := statusFromError(err); status {
	case http.StatusNotFound:
		log.Debug().Err(err).Msg("vault not found")
		writeError(w, app.MsgVaultNotFound, status)
	case http.StatusForbidden:
		log.Warn().Err(err).Msg("vault access denied")
		writeError(w, app.MsgForbidden, status)
	default:
		log.Err(err).Msg("unexpected vault error")
		writeInternalError(w, err)
	}
}
