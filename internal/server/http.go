package server

import (
	"context"
	"net/http"
	"time"

	"github.com/haeun-dev/memo-server/internal/config"
	"github.com/haeun-dev/memo-server/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// httpRouter is the request multiplexer handed to the HTTP server; the chi
// mux built by the handler layer satisfies it.
type httpRouter interface {
	http.Handler
}

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router httpRouter, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
