package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zerovault/zero-vault/internal/app"
	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/internal/service"
	"github.com/zerovault/zero-vault/internal/store"
	"github.com/zerovault/zero-vault/internal/utils"
	"github.com/zerovault/zero-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// a malformed body is treated as empty credentials and rejected below
	var credentials models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Debug().Err(err).Msg("malformed JSON body")
	}

	if credentials.Email == "" || credentials.Password == "" {
		writeError(w, app.MsgEmailPasswordRequired, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid registration data")
			writeError(w, app.MsgEmailPasswordRequired, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			writeError(w, app.MsgUserAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeInternalError(w, err)
			return
		}
	}

	log.Debug().Str("user_id", user.UserID).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: app.MsgUserCreated,
		UserID:  user.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Debug().Err(err).Msg("malformed JSON body")
	}

	if credentials.Email == "" || credentials.Password == "" {
		writeError(w, app.MsgEmailPasswordRequired, http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("login rejected")
			writeError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeInternalError(w, err)
			return
		}
	}

	log.Debug().Str("user_id", session.UserID).Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token:     session.Token,
		UserID:    session.UserID,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetSessionTokenFromContext(ctx)
	if !ok {
		writeError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, token); err != nil {
		log.Err(err).Msg("unexpected error occurred during logout")
		writeInternalError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}
