package handler

import (
	"github.com/zerovault/zero-vault/internal/config"
	"github.com/zerovault/zero-vault/internal/handler/http"
	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
