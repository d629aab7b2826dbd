package handler

import (
	"errors"

	"github.com/benharosh/studio-cms/internal/config"
	"github.com/benharosh/studio-cms/internal/handler/http"
	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/service"
)

var errNoHandlersAreCreated = errors.New("no handlers are created: no server address provided")

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
