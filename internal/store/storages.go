package store

import (
	"context"

	"github.com/zerovault/zero-vault/internal/config"
	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/migrations"
)

// Storages bundles all repositories behind a single wiring point for the
// service layer.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	VaultRepository   VaultRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations,
// and constructs all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		VaultRepository:   NewVaultRepository(db, log),
	}, nil
}
