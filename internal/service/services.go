package service

import (
	"github.com/zerovault/zero-vault/internal/config"
	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/internal/store"
)

type Services struct {
	AuthService  AuthService
	VaultService VaultService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger),
		VaultService: NewVaultService(storages.VaultRepository, logger),
	}
}
