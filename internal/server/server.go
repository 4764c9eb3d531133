package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/haeun-dev/memo-server/internal/config"
	"github.com/haeun-dev/memo-server/internal/logger"
)

// Shutdowner is anything that must be stopped together with the server,
// such as the background mail worker draining its queue.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

type server struct {
	httpServer *httpServer
	workers    []Shutdowner
	logger     *logger.Logger
}

// NewServer builds the HTTP server around the given router. The listed
// workers are shut down after the listener stops accepting requests.
func NewServer(router httpRouter, cfg config.Server, logger *logger.Logger, workers ...Shutdowner) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(router, cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	for _, worker := range s.workers {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := worker.Shutdown(ctx); err != nil {
			s.logger.Err(err).Msg("worker shutdown ended with error")
		}
		cancel()
	}
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
