package http

import (
	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/oauth"
	"github.com/haeun-dev/memo-server/internal/service"
	"github.com/haeun-dev/memo-server/internal/session"
)

type Handler struct {
	services  *service.Services
	sessions  *session.Manager
	providers oauth.Clients

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, providers oauth.Clients, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  sessions,
		providers: providers,
		logger:    logger,
	}
}
