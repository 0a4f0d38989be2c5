package http

import (
	"errors"
	"net/http"

	"github.com/zerovault/zero-vault/internal/app"
	"github.com/zerovault/zero-vault/internal/service"
	"github.com/zerovault/zero-vault/internal/store"
	"github.com/zerovault/zero-vault/internal/utils"
	"github.com/zerovault/zero-vault/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrNotVaultOwner:       http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrNoSessionWasFound:  http.StatusUnauthorized,
	store.ErrVaultNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends the uniform JSON error body used by every endpoint.
func writeError(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

// writeInternalError sends a 500 with the underlying error message attached
// under "details", matching the error shape of the other endpoints.
func writeInternalError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error:   app.MsgInternalServerError,
		Details: err.Error(),
	}, http.StatusInternalServerError)
}
