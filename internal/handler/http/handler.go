package http

import (
	"net/http"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/service"
	"github.com/benharosh/studio-cms/internal/utils"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeJSON serializes data as the 200 OK response body. A serialization
// failure at this point can no longer change the status line, so it is only
// logged.
func (h *Handler) writeJSON(w http.ResponseWriter, log *logger.Logger, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response body")
	}
}
