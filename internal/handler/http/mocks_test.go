package http

import (
	"context"
	"net/http"

	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/internal/service"
	"github.com/zerovault/zero-vault/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn        func(ctx context.Context, email, password string) (models.User, error)
	loginFn           func(ctx context.Context, email, password string) (models.Session, error)
	validateSessionFn func(ctx context.Context, token string) (string, bool)
	logoutFn          func(ctx context.Context, token string) error
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (models.User, error) {
	return m.registerFn(ctx, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token string) (string, bool) {
	return m.validateSessionFn(ctx, token)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFn(ctx, token)
}

// mockVaultService implements service.VaultService for unit tests.
type mockVaultService struct {
	listFn   func(ctx context.Context, userID string) ([]models.Vault, error)
	createFn func(ctx context.Context, userID string, req models.CreateVaultRequest) (models.Vault, error)
	getFn    func(ctx context.Context, userID, vaultID string) (models.Vault, error)
	updateFn func(ctx context.Context, userID, vaultID string, update models.VaultUpdate) (models.Vault, error)
	deleteFn func(ctx context.Context, userID, vaultID string) error
}

func (m *mockVaultService) List(ctx context.Context, userID string) ([]models.Vault, error) {
	return m.listFn(ctx, userID)
}

func (m *mockVaultService) Create(ctx context.Context, userID string, req models.CreateVaultRequest) (models.Vault, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockVaultService) Get(ctx context.Context, userID, vaultID string) (models.Vault, error) {
	return m.getFn(ctx, userID, vaultID)
}

func (m *mockVaultService) Update(ctx context.Context, userID, vaultID string, update models.VaultUpdate) (models.Vault, error) {
	return m.updateFn(ctx, userID, vaultID, update)
}

func (m *mockVaultService) Delete(ctx context.Context, userID, vaultID string) error {
	return m.deleteFn(ctx, userID, vaultID)
}

// newTestHandler builds a Handler with the given service mocks.
func newTestHandler(auth service.AuthService, vault service.VaultService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:  auth,
			VaultService: vault,
		},
	}
}

// injectNopLogger puts a nop logger into the request context so that
// handlers invoked outside the middleware chain still find one.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
