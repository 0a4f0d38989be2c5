package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/zerovault/zero-vault/internal/app"
	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/internal/utils"
)

// auth guards the protected routes. It extracts the bearer token from the
// Authorization header, validates the session against the store and puts the
// resolved user id and token into the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := extractBearerToken(r)
		if err != nil {
			log.Debug().Err(err).Msg("missing or malformed Authorization header")
			writeError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		userID, ok := h.services.AuthService.ValidateSession(r.Context(), token)
		if !ok {
			log.Debug().Msg("session token rejected")
			writeError(w, app.MsgInvalidOrExpiredSession, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationScheme
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptySessionToken
	}

	return token, nil
}
